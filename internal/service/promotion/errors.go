package promotion

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPromotionID    = errors.New("invalid promotion id")
	ErrInvalidStoreID        = errors.New("invalid store id")
	ErrInvalidName           = errors.New("invalid name")

	ErrPromotionNotFound = errors.New("promotion not found")
	ErrConflict          = errors.New("resource already exists")
)
