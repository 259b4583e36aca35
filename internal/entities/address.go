package entities

import "time"

type UserAddress struct {
	ID          int64
	UserID      string
	Label       string
	FullAddress string
	Point       *GeoPoint
	IsDefault   bool
	CreatedAt   time.Time
}

type UserAddressModify struct {
	ID          *int64
	UserID      *string
	Label       *string
	FullAddress *string
	Point       *GeoPoint
	IsDefault   *bool
}
