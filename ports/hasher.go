package ports

// PasswordHasher performs one-way salted hashing of user passwords.
type PasswordHasher interface {
	// Hash produces a salted hash of plaintext. Intentionally slow.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hashed using a
	// constant-time comparison. A mismatch is (false, nil); an error is
	// only returned when hashed is not a recognizable hash encoding.
	Verify(plaintext, hashed string) (bool, error)
}
