package delivery

import "errors"

var (
	ErrInvalidDeliveryID    = errors.New("invalid delivery id")
	ErrInvalidStatus        = errors.New("invalid delivery status")
	ErrIllegalTransition    = errors.New("illegal status transition")
	ErrDeliveryNotPending   = errors.New("delivery is not pending")
	ErrDriverUnavailable    = errors.New("driver is not available")
	ErrNotDeliveryOrder     = errors.New("order is not for delivery")
	ErrDeliveryAlreadyExist = errors.New("delivery for order already exists")

	ErrDeliveryNotFound = errors.New("delivery not found")
)
