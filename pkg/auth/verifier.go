package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a presented password against a stored hash.
// Login is username-based with a documented accept-any stub as the default;
// this interface is the seam where real verification plugs in.
type CredentialVerifier interface {
	Verify(storedHash, password string) bool
}

// AcceptAll is the stub verifier: any password (including none) passes.
type AcceptAll struct{}

func (AcceptAll) Verify(storedHash, password string) bool {
	return true
}

// Bcrypt verifies against a bcrypt hash. Users without a stored hash still
// pass, so verification can be enabled without locking out existing accounts.
type Bcrypt struct{}

func (Bcrypt) Verify(storedHash, password string) bool {
	if storedHash == "" {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}

// HashPassword produces a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
