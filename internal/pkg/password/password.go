package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooLong  = errors.New("password exceeds bcrypt's 72 byte limit")
)

// Matches the cost used by the club's existing password hashes.
const DefaultCost = 10

const maxBytes = 72

func HashPassword(password string) (string, error) {
	switch {
	case password == "":
		return "", ErrInvalidPassword
	case len(password) > maxBytes:
		return "", ErrPasswordTooLong
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashedBytes), nil
}

// ComparePassword returns ErrComparisonFailed for a wrong password, so callers
// can tell bad credentials apart from a malformed stored hash.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return err
	}
}
