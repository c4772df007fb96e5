package tokenizer

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gatehouse/gatehouse/core"
	"github.com/gatehouse/gatehouse/ports"
)

// JWTTokenizer implements the Tokenizer port using HS256 JWTs signed
// with a server-held secret. The secret comes from configuration and is
// never embedded in the token.
type JWTTokenizer struct {
	secret []byte
}

// NewJWTTokenizer creates a new JWT tokenizer
func NewJWTTokenizer(secret []byte) ports.Tokenizer {
	return &JWTTokenizer{secret: secret}
}

// Issue signs claims {sub, iat, exp, jti} for subjectID and returns the
// opaque token string together with its expiry.
func (j *JWTTokenizer) Issue(subjectID string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Audience:  jwt.ClaimStrings{AudienceSession},
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks signature integrity before trusting any claim, then
// expiry. The failure kinds stay distinct for logging.
func (j *JWTTokenizer) Verify(tokenStr string) (core.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; anything else is treated as tampering
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithAudience(AudienceSession))

	if err != nil {
		// Signature failures win over claim failures: claims from an
		// unverified token must never be acted on.
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return core.TokenClaims{}, core.ErrSignatureMismatch
		case errors.Is(err, jwt.ErrTokenMalformed):
			return core.TokenClaims{}, core.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return core.TokenClaims{}, core.ErrTokenExpired
		default:
			return core.TokenClaims{}, core.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return core.TokenClaims{}, core.ErrTokenMalformed
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return core.TokenClaims{}, core.ErrTokenMalformed
	}

	out := core.TokenClaims{
		ID:      claims.ID,
		Subject: claims.Subject,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
