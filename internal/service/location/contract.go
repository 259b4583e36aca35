//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_test
package location

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, locationModifyEntity entities.StoreLocationModify) (int64, error)
	GetAll(ctx context.Context) ([]entities.StoreLocation, error)
	Update(ctx context.Context, locationModifyEntity entities.StoreLocationModify) (*entities.StoreLocation, error)
	GetStorePoint(ctx context.Context, storeID int64) (*entities.GeoPoint, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
