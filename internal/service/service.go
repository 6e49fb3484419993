// Package service holds the domain logic behind the HTTP handlers:
// ownership checks, study-session accounting and the public-library
// copy operation.
package service

import (
	"errors"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// UserID is the one identity representation used below the HTTP layer.
// The JWT middleware resolves a request to exactly one of these.
type UserID string

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewID generates an identifier for a new database row.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, 16)
}
