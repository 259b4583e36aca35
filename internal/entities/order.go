package entities

import "time"

// DefaultTaxRate единственное место, где живёт ставка налога.
// Витрина показывает оценку, авторитетный расчёт делается здесь.
const DefaultTaxRate = 0.07

type Order struct {
	Number          string
	StoreID         int64
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	FulfillmentType FulfillmentType
	Status          OrderStatusType
	DeliveryFee     float64
	Notes           string
	CreatedAt       time.Time
}

type OrderStatusType string

const (
	OrderConfirmed OrderStatusType = "confirmed"
	OrderCancelled OrderStatusType = "cancelled"
	OrderCompleted OrderStatusType = "completed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "pickup"
	FulfillmentDelivery FulfillmentType = "delivery"
)

func (t FulfillmentType) String() string {
	return string(t)
}

type OrderModify struct {
	Number *string
	Status *OrderStatusType
}
