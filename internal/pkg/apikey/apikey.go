package apikey

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("api key hashing failed")
	ErrKeyMismatch   = errors.New("api key mismatch")
	ErrEmptyKey      = errors.New("api key is empty")
)

const DefaultCost = bcrypt.DefaultCost

// Hash is used by operators to produce PUBLIC_API_KEY_HASH and by test suites.
func Hash(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(key), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashed), nil
}

func Compare(hashedKey, presented string) error {
	if hashedKey == "" || presented == "" {
		return ErrEmptyKey
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(presented))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrKeyMismatch
		}
		return err
	}

	return nil
}
