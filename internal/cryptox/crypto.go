// Package cryptox wraps the password hashing used by the credential store.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
var ErrPasswordTooLong = errors.New("password longer than 72 bytes")

// HashPassword returns the bcrypt hash of password at the default cost.
func HashPassword(password []byte) ([]byte, error) {
	if len(password) > 72 {
		return nil, ErrPasswordTooLong
	}
	return bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
}

// CheckPassword reports whether password matches hash.
// A malformed hash never matches.
func CheckPassword(hash, password []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, password) == nil
}

// dummyHash is compared against when the username does not exist so both
// branches of a lookup cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("staffdesk-dummy"), bcrypt.DefaultCost)

// BurnCompare performs a comparison against a fixed hash and discards the result.
func BurnCompare(password []byte) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, password)
}
