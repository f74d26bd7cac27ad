package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword   = errors.New("empty password")
	ErrMissingPassword = errors.New("missing hash or password")
)

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword returns nil when password matches the bcrypt hash.
func ComparePassword(hash, password string) error {
	if hash == "" || password == "" {
		return ErrMissingPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
