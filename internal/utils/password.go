package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost stays at the library default; raise it here if login latency
// budgets allow.
const bcryptCost = bcrypt.DefaultCost

// HashPassword derives a bcrypt hash for storage alongside the user record.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
