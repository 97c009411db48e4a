package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrParseFailure          = errors.New("parse failed")
	ErrValidationFailure     = errors.New("validation failed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
