package ports

import (
	"time"

	"github.com/gatehouse/gatehouse/core"
)

// Tokenizer encodes a claims payload into a signed opaque token string
// and decodes/verifies it back.
type Tokenizer interface {
	// Issue builds claims {subject, iat, exp} for subjectID, signs them
	// with the server secret and returns the token along with its expiry.
	Issue(subjectID string, ttl time.Duration) (token string, expiresAt time.Time, err error)

	// Verify checks the signature before trusting any claim, then checks
	// expiry. Failures are core.ErrTokenMalformed,
	// core.ErrSignatureMismatch or core.ErrTokenExpired so callers can
	// log the kind even though the HTTP boundary collapses them.
	Verify(token string) (core.TokenClaims, error)
}
