package repository

import "errors"

var (
	// ErrValidation marks bad user input: required field missing,
	// out-of-range numeric, duplicate unique key
	ErrValidation = errors.New("invalid input data")
	// ErrNotFound marks a referenced id or code that is absent
	ErrNotFound = errors.New("resource not found")
)
