package entities

import "time"

type Driver struct {
	ID          int64
	Name        string
	Phone       string
	VehicleType DriverVehicleType
	IsAvailable bool
	Location    *GeoPoint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DriverVehicleType string

const (
	OnFoot  DriverVehicleType = "on_foot"
	Scooter DriverVehicleType = "scooter"
	Car     DriverVehicleType = "car"
)

const DefaultVehicleType = OnFoot

func (t DriverVehicleType) String() string {
	return string(t)
}

type DriverModify struct {
	ID          *int64
	Name        *string
	Phone       *string
	VehicleType *DriverVehicleType
	IsAvailable *bool
	Location    *GeoPoint
}
