package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrAlreadyRegistered = errors.New("student is already signed up")
	ErrNotRegistered     = errors.New("student is not registered")
)
