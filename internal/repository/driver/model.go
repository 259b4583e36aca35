package driver

import "time"

type DriverDB struct {
	ID          int64
	Name        string
	Phone       string
	VehicleType string
	IsAvailable bool
	Location    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DriverModifyDB struct {
	ID          *int64
	Name        *string
	Phone       *string
	VehicleType *string
	IsAvailable *bool
	Location    *string
}
