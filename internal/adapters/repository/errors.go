package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrInvalidSeed      = errors.New("invalid seed data")
)
