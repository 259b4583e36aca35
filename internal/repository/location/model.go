package location

import "time"

type LocationDB struct {
	ID               int64
	StoreID          int64
	Name             string
	Address          string
	Point            string
	Hours            []byte
	PickupEnabled    bool
	DeliveryEnabled  bool
	CoverageRadiusKm float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type LocationModifyDB struct {
	ID               *int64
	StoreID          *int64
	Name             *string
	Address          *string
	Point            *string
	Hours            []byte
	PickupEnabled    *bool
	DeliveryEnabled  *bool
	CoverageRadiusKm *float64
}

// dayHoursPayload один слот расписания внутри jsonb-массива из семи элементов.
type dayHoursPayload struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}
