package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidData   = errors.New("invalid data")
	ErrNoTextColumn  = errors.New("no usable text column")
	ErrDuplicate     = errors.New("duplicate entry")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnauthorized  = errors.New("invalid credentials")
)
