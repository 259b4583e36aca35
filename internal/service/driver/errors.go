package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrDriverNotFound = errors.New("driver not found")
	ErrConflict       = errors.New("resource already exists")
)
