package delivery

import "time"

type DeliveryDB struct {
	ID          int64
	OrderNumber string
	StoreID     int64
	Status      string
	DriverID    *int64
	Fee         float64
	Notes       *string
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DeliveryModifyDB struct {
	ID          *int64
	OrderNumber *string
	StoreID     *int64
	Status      *string
	DriverID    *int64
	Fee         *float64
	Notes       *string
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// DeliveryViewDB строка доски из join-запроса, опциональные стороны left join
// приходят как NULL и добиваются дефолтами в конвертере.
type DeliveryViewDB struct {
	ID            int64
	OrderNumber   string
	Status        string
	StoreName     *string
	CustomerName  *string
	CustomerPhone *string
	Address       *string
	DriverName    *string
	DriverPhone   *string
	Fee           float64
	Notes         *string
	AssignedAt    *time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
}

type CandidateDB struct {
	ID               int64
	Name             string
	Phone            string
	VehicleType      string
	Location         *string
	ActiveDeliveries int64
}
