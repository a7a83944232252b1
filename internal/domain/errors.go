package domain

import "errors"

// Domain errors. Store-level errors are converted to these at the repository
// and service boundaries; the console prints them and keeps running.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidDate        = errors.New("invalid date, expected yyyy-mm-dd")
	ErrCarUnavailable     = errors.New("this car is not available for rental")
)
