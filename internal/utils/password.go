// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordMismatch is returned by CheckPassword when the plain-text
	// password does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrPasswordTooLong is returned by HashPassword for passwords longer
	// than the 72 bytes bcrypt can take.
	ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
)

// maxPasswordBytes is the longest input bcrypt reads; bytes past it are
// ignored by the hash.
const maxPasswordBytes = 72

// HashPassword returns the bcrypt hash of password using the given cost.
// A zero cost selects bcrypt.DefaultCost.
//
// Passwords longer than 72 bytes are rejected with ErrPasswordTooLong
// instead of being truncated.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a plain-text password.
//
// Returns ErrPasswordMismatch when they do not match and a wrapped error when
// the hash itself is malformed. Passwords longer than 72 bytes never match:
// HashPassword refuses them, and bcrypt would otherwise compare only their
// prefix.
func CheckPassword(hash, password string) error {
	if len(password) > maxPasswordBytes {
		return ErrPasswordMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}

	return fmt.Errorf("error comparing password hash: %w", err)
}
