// Package password wraps bcrypt hashing and verification so the credential
// store and the auth service share one scheme.
package password

import "golang.org/x/crypto/bcrypt"

// DummyHash is a bcrypt hash of a random throwaway value. Login paths that
// fail before reaching a real hash compare against it instead, so an unknown
// identifier costs the same as a wrong password.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hash hashes a plaintext password with bcrypt at the default cost.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored bcrypt hash.
// A non-match is false, not an error.
func Verify(storedHash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
