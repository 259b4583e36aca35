package content

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPageID         = errors.New("invalid page id")
	ErrInvalidSlug           = errors.New("invalid slug")

	ErrPageNotFound = errors.New("page not found")
	ErrConflict     = errors.New("resource already exists")
)
