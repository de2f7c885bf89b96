package services

import "errors"

// Business-rule failures surfaced to handlers. Handlers match these
// with errors.Is and map them to HTTP status codes; anything else is
// treated as an internal error.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidation       = errors.New("validation failed")
	ErrDuplicate        = errors.New("already exists")
)
