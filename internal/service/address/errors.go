package address

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAddressID      = errors.New("invalid address id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidPoint          = errors.New("invalid point coordinates")

	ErrAddressNotFound = errors.New("address not found")
)
