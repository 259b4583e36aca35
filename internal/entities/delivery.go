package entities

import "time"

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryAssigned  DeliveryStatusType = "assigned"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryFailed    DeliveryStatusType = "failed"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// StampField временная метка, которую обязан проставить переход в данный статус.
type StampField string

const (
	StampNone      StampField = ""
	StampAssigned  StampField = "assigned_at"
	StampPickedUp  StampField = "picked_up_at"
	StampDelivered StampField = "delivered_at"
)

// BoardStatuses порядок колонок доски, он же канонический порядок жизненного цикла.
var BoardStatuses = []DeliveryStatusType{
	DeliveryPending,
	DeliveryAssigned,
	DeliveryPickedUp,
	DeliveryInTransit,
	DeliveryDelivered,
	DeliveryFailed,
}

// statusFlow единственная таблица переходов: все вызывающие стороны
// (REST, воркер, фоновые задачи) сверяются с ней, статусы-литералы
// нигде больше не дублируются.
var statusFlow = map[DeliveryStatusType]map[DeliveryStatusType]struct{}{
	// pending назначается только через assign, перетаскивание запрещено
	DeliveryPending: {},
	DeliveryAssigned: {
		DeliveryPickedUp: {},
	},
	DeliveryPickedUp: {
		DeliveryInTransit: {},
	},
	DeliveryInTransit: {
		DeliveryDelivered: {},
		DeliveryFailed:    {},
	},
	DeliveryFailed: {
		DeliveryPending: {},
	},
	DeliveryDelivered: {},
}

var statusStamps = map[DeliveryStatusType]StampField{
	DeliveryAssigned:  StampAssigned,
	DeliveryPickedUp:  StampPickedUp,
	DeliveryDelivered: StampDelivered,
}

func IsValidDeliveryStatus(s DeliveryStatusType) bool {
	_, ok := statusFlow[s]
	return ok
}

func (s DeliveryStatusType) CanTransitionTo(next DeliveryStatusType) bool {
	allowed, ok := statusFlow[s]
	if !ok {
		return false
	}
	_, ok = allowed[next]
	return ok
}

// RequiredStamp возвращает поле-метку, проставляемое при входе в статус.
func (s DeliveryStatusType) RequiredStamp() StampField {
	return statusStamps[s]
}

type Delivery struct {
	ID          int64
	OrderNumber string
	StoreID     int64
	Status      DeliveryStatusType
	DriverID    *int64
	Fee         float64
	Notes       string
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DeliveryModify struct {
	ID          *int64
	OrderNumber *string
	StoreID     *int64
	Status      *DeliveryStatusType
	DriverID    *int64
	Fee         *float64
	Notes       *string
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// DeliveryView плоская модель карточки для доски и таблиц: все опциональные
// поля уже заполнены дефолтами, рендеру не нужно ветвиться по null.
type DeliveryView struct {
	ID            int64
	OrderNumber   string
	Status        DeliveryStatusType
	StoreName     string
	CustomerName  string
	CustomerPhone string
	Address       string
	DriverName    string
	DriverPhone   string
	Fee           float64
	Notes         string
	AssignedAt    *time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
}

type BoardColumn struct {
	Status     DeliveryStatusType
	Deliveries []DeliveryView
}

type DeliveryAssignment struct {
	DeliveryID  int64
	OrderNumber string
	DriverID    int64
	DriverName  string
	AssignedAt  time.Time
}

// AssignmentResult ответ авто-назначения: отсутствие кандидата это
// не ошибка, а обычный результат с заполненным Error.
type AssignmentResult struct {
	Success    bool
	DriverID   int64
	DriverName string
	Score      float64
	DistanceKm float64
	Error      string
}

// AssignmentCandidate доступный водитель вместе с текущей загрузкой.
type AssignmentCandidate struct {
	Driver           Driver
	ActiveDeliveries int64
}
