package entities

import "time"

// DaySlots фиксированные семь слотов расписания, индекс соответствует time.Weekday.
const DaySlots = 7

type DayHours struct {
	Open   string
	Close  string
	IsOpen bool
}

type StoreLocation struct {
	ID               int64
	StoreID          int64
	Name             string
	Address          string
	Point            GeoPoint
	Hours            [DaySlots]DayHours
	PickupEnabled    bool
	DeliveryEnabled  bool
	CoverageRadiusKm float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type StoreLocationModify struct {
	ID               *int64
	StoreID          *int64
	Name             *string
	Address          *string
	Point            *GeoPoint
	Hours            *[DaySlots]DayHours
	PickupEnabled    *bool
	DeliveryEnabled  *bool
	CoverageRadiusKm *float64
}
