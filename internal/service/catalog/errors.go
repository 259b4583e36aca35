package catalog

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidKind           = errors.New("invalid taxonomy kind")
	ErrInvalidEntryID        = errors.New("invalid taxonomy entry id")
	ErrInvalidName           = errors.New("invalid name")

	ErrEntryNotFound = errors.New("taxonomy entry not found")
	ErrConflict      = errors.New("resource already exists")
)
