// Package security provides password hashing for the credential store.
// Passwords are stored only as bcrypt hashes; plain text never reaches
// persistence.
package security

import (
	"foodrun/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of the provided password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
