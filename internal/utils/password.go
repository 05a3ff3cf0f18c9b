package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way salted bcrypt hash from the given plaintext
// password.
//
// A fresh random salt is generated on every call, so hashing the same
// plaintext twice yields different blobs; both verify correctly via
// [VerifyPassword]. cost is the bcrypt work factor; pass 0 to use the
// library default.
//
// Returns the hash blob or an error if the plaintext is empty or exceeds
// bcrypt's 72-byte input limit.
func HashPassword(plaintext string, cost int) ([]byte, error) {
	if plaintext == "" {
		return nil, ErrEmptyPassword
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	return hash, nil
}

// VerifyPassword reports whether plaintext matches the bcrypt hash blob.
//
// The salt is embedded in the blob, and the comparison inside bcrypt is
// constant-time. A well-formed mismatch never produces an error; it simply
// returns false, as does a malformed blob.
func VerifyPassword(plaintext string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plaintext)) == nil
}
