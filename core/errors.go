package core

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a
	// password mismatch. The two cases are deliberately collapsed so
	// callers cannot tell which one occurred.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenMalformed is returned when a token cannot be decoded at all
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrSignatureMismatch is returned when a token's signature does not
	// verify under the server secret
	ErrSignatureMismatch = errors.New("token signature mismatch")

	// ErrTokenExpired is returned when a structurally valid token is past
	// its expiry
	ErrTokenExpired = errors.New("token has expired")

	// ErrUserNotFound is returned by the directory when no record matches
	ErrUserNotFound = errors.New("user not found")

	// ErrDirectoryUnavailable is returned when the directory lookup fails
	// for infrastructure reasons. It is not an authentication decision
	// and must not surface as one.
	ErrDirectoryUnavailable = errors.New("user directory unavailable")

	// ErrInvalidInput is returned on empty or otherwise unusable hasher input
	ErrInvalidInput = errors.New("invalid input")

	// ErrHashFormat is returned when a stored password hash is not a
	// recognizable hash encoding
	ErrHashFormat = errors.New("unrecognized hash format")
)
