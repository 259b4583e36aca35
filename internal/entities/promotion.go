package entities

import (
	"errors"
	"time"
)

var (
	ErrInvalidPromotionType   = errors.New("invalid promotion type")
	ErrInvalidPromotionWindow = errors.New("promotion window end must be after start")
	ErrInvalidDiscount        = errors.New("discount percent must be in (0, 100]")
	ErrNoEligibleProducts     = errors.New("flash sale requires at least one eligible product")
	ErrTooFewItems            = errors.New("mix and match deal requires at least two items")
	ErrInvalidBundlePrice     = errors.New("bundle price must be positive")
	ErrNoEligibleCategories   = errors.New("mix and match deal requires at least one eligible category")
)

type PromotionType string

const (
	PromotionFlashSale PromotionType = "flash_sale"
	PromotionMixMatch  PromotionType = "mix_match"
)

func (t PromotionType) String() string {
	return string(t)
}

// Promotion размеченный вариант вместо нетипизированного config-блоба:
// ровно одно из вариантных полей не nil, и оно соответствует Type.
// Инварианты проверяются конструкторами, а не при рендере.
type Promotion struct {
	ID        int64
	StoreID   int64
	Name      string
	Type      PromotionType
	Active    bool
	FlashSale *FlashSale
	MixMatch  *MixMatchDeal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FlashSale struct {
	StartsAt           time.Time
	EndsAt             time.Time
	DiscountPercent    float64
	EligibleProductIDs []int64
}

type MixMatchDeal struct {
	MinItems           int
	BundlePrice        float64
	EligibleCategories []string
}

func NewFlashSale(storeID int64, name string, sale FlashSale) (*Promotion, error) {
	if !sale.EndsAt.After(sale.StartsAt) {
		return nil, ErrInvalidPromotionWindow
	}
	if sale.DiscountPercent <= 0 || sale.DiscountPercent > 100 {
		return nil, ErrInvalidDiscount
	}
	if len(sale.EligibleProductIDs) == 0 {
		return nil, ErrNoEligibleProducts
	}

	return &Promotion{
		StoreID:   storeID,
		Name:      name,
		Type:      PromotionFlashSale,
		Active:    true,
		FlashSale: &sale,
	}, nil
}

func NewMixMatchDeal(storeID int64, name string, deal MixMatchDeal) (*Promotion, error) {
	if deal.MinItems < 2 {
		return nil, ErrTooFewItems
	}
	if deal.BundlePrice <= 0 {
		return nil, ErrInvalidBundlePrice
	}
	if len(deal.EligibleCategories) == 0 {
		return nil, ErrNoEligibleCategories
	}

	return &Promotion{
		StoreID:  storeID,
		Name:     name,
		Type:     PromotionMixMatch,
		Active:   true,
		MixMatch: &deal,
	}, nil
}
