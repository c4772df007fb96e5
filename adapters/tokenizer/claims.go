package tokenizer

import "github.com/golang-jwt/jwt/v5"

// AudienceSession marks tokens issued by this service
const AudienceSession = "session:access"

// SessionClaims are the standard claims carried by a session token
type SessionClaims struct {
	jwt.RegisteredClaims
}
