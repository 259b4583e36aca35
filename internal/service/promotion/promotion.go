package promotion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/entities"
)

type Promotion struct {
	repository Repository
}

func New(repository Repository) *Promotion {
	return &Promotion{
		repository: repository,
	}
}

// CreateFlashSale инварианты варианта проверяет конструктор сущности,
// его ошибки отдаются вызывающему как есть.
func (s *Promotion) CreateFlashSale(ctx context.Context, storeID int64, name string, sale entities.FlashSale) (int64, error) {
	if storeID <= 0 {
		return 0, ErrInvalidStoreID
	}
	if strings.TrimSpace(name) == "" {
		return 0, ErrInvalidName
	}

	promotionEntity, err := entities.NewFlashSale(storeID, name, sale)
	if err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, promotionEntity)
	if err != nil {
		return 0, fmt.Errorf("create flash sale: %w", err)
	}
	return id, nil
}

func (s *Promotion) CreateMixMatchDeal(ctx context.Context, storeID int64, name string, deal entities.MixMatchDeal) (int64, error) {
	if storeID <= 0 {
		return 0, ErrInvalidStoreID
	}
	if strings.TrimSpace(name) == "" {
		return 0, ErrInvalidName
	}

	promotionEntity, err := entities.NewMixMatchDeal(storeID, name, deal)
	if err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, promotionEntity)
	if err != nil {
		return 0, fmt.Errorf("create mix and match deal: %w", err)
	}
	return id, nil
}

func (s *Promotion) GetPromotions(ctx context.Context) ([]entities.Promotion, error) {
	promotions, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get promotions: %w", err)
	}
	return promotions, nil
}

func (s *Promotion) DeletePromotion(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPromotionID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	return nil
}

// DeactivateExpiredFlashSales снимает флаг active у истёкших flash sale.
func (s *Promotion) DeactivateExpiredFlashSales(ctx context.Context) (int64, error) {
	deactivated, err := s.repository.DeactivateExpiredFlashSales(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("deactivate expired flash sales: %w", err)
	}
	return deactivated, nil
}
