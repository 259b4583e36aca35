//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=promotion_post_test
package promotion_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateFlashSale(ctx context.Context, storeID int64, name string, sale entities.FlashSale) (int64, error)
	CreateMixMatchDeal(ctx context.Context, storeID int64, name string, deal entities.MixMatchDeal) (int64, error)
}
