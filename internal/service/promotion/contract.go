//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=promotion_test
package promotion

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, promotionEntity *entities.Promotion) (int64, error)
	GetAll(ctx context.Context) ([]entities.Promotion, error)
	Delete(ctx context.Context, id int64) error
	DeactivateExpiredFlashSales(ctx context.Context, now time.Time) (int64, error)
}
