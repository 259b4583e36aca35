package location

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidLocationID     = errors.New("invalid location id")
	ErrInvalidStoreID        = errors.New("invalid store id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPoint          = errors.New("invalid point coordinates")
	ErrInvalidHours          = errors.New("invalid opening hours")
	ErrInvalidRadius         = errors.New("invalid coverage radius")

	ErrLocationNotFound = errors.New("store location not found")
	ErrConflict         = errors.New("resource already exists")
)
