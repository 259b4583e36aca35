package flash_sale_expiry

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	DeactivateExpiredFlashSales(ctx context.Context) (int64, error)
}

type FlashSaleExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewFlashSaleExpiry(log logger.Logger, service Service, interval time.Duration) *FlashSaleExpiry {
	return &FlashSaleExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (f *FlashSaleExpiry) TTL() time.Duration {
	return f.interval
}

func (f *FlashSaleExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, f.interval)
	defer cancel()

	rowsAffected, err := f.service.DeactivateExpiredFlashSales(ctxWithTimeout)

	if rowsAffected > 0 {
		f.log.With(
			logger.NewField("deactivated_flash_sales", rowsAffected),
		).Info("flash sale expiry sweep")
	}

	return err
}

func (f *FlashSaleExpiry) Info() string {
	return "flash sale expiry"
}
