package core

import "time"

// User is a record resolved from the user directory. The directory is
// an external collaborator: records are created and deleted elsewhere,
// this service only reads them.
type User struct {
	ID           string // opaque unique identifier
	Username     string // unique, case-sensitive
	PasswordHash string // one-way hash output, never the plaintext
}

// Credentials is the transient username/password pair presented on
// login. It is never persisted.
type Credentials struct {
	Username string
	Password string
}

// TokenClaims is the payload carried by an issued token.
type TokenClaims struct {
	ID        string    // unique token identifier (jti)
	Subject   string    // user identifier
	IssuedAt  time.Time // when the token was issued
	ExpiresAt time.Time // when the token stops being valid
}

// Identity is the minimal identity projection attached to a request
// after its token has been validated. It is derived fresh on every
// request from the token subject and a directory lookup.
type Identity struct {
	ID       string
	Username string
}
