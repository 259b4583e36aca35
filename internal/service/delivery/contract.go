//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	Fail(ctx context.Context, id int64) error

	GetAllViews(ctx context.Context) ([]entities.DeliveryView, error)
	GetAssignmentCandidates(ctx context.Context) ([]entities.AssignmentCandidate, error)
	ReleaseStaleAssignments(ctx context.Context, assignedBefore time.Time) (int64, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
	UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}

type LocationService interface {
	GetStorePoint(ctx context.Context, storeID int64) (*entities.GeoPoint, error)
}

type ScoreFactory interface {
	Score(candidate entities.AssignmentCandidate, store entities.GeoPoint) (score, distanceKm float64)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
