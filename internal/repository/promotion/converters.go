package promotion

import (
	"encoding/json"
	"fmt"

	"marketplace/internal/entities"
)

func ToDomain(p *PromotionDB) (*entities.Promotion, error) {
	if p == nil {
		return nil, nil
	}

	promotionEntity := &entities.Promotion{
		ID:        p.ID,
		StoreID:   p.StoreID,
		Name:      p.Name,
		Type:      entities.PromotionType(p.Type),
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	switch promotionEntity.Type {
	case entities.PromotionFlashSale:
		var payload flashSalePayload
		if err := json.Unmarshal(p.Payload, &payload); err != nil {
			return nil, fmt.Errorf("decode flash sale payload: %w", err)
		}
		promotionEntity.FlashSale = &entities.FlashSale{
			StartsAt:           payload.StartsAt,
			EndsAt:             payload.EndsAt,
			DiscountPercent:    payload.DiscountPercent,
			EligibleProductIDs: payload.EligibleProductIDs,
		}
	case entities.PromotionMixMatch:
		var payload mixMatchPayload
		if err := json.Unmarshal(p.Payload, &payload); err != nil {
			return nil, fmt.Errorf("decode mix and match payload: %w", err)
		}
		promotionEntity.MixMatch = &entities.MixMatchDeal{
			MinItems:           payload.MinItems,
			BundlePrice:        payload.BundlePrice,
			EligibleCategories: payload.EligibleCategories,
		}
	default:
		return nil, fmt.Errorf("%w: %s", entities.ErrInvalidPromotionType, p.Type)
	}

	return promotionEntity, nil
}

func FromDomain(p *entities.Promotion) (*PromotionDB, error) {
	if p == nil {
		return nil, nil
	}

	promotionDB := &PromotionDB{
		ID:      p.ID,
		StoreID: p.StoreID,
		Name:    p.Name,
		Type:    p.Type.String(),
		Active:  p.Active,
	}

	var payload interface{}
	switch p.Type {
	case entities.PromotionFlashSale:
		if p.FlashSale == nil {
			return nil, entities.ErrInvalidPromotionType
		}
		payload = flashSalePayload{
			StartsAt:           p.FlashSale.StartsAt,
			EndsAt:             p.FlashSale.EndsAt,
			DiscountPercent:    p.FlashSale.DiscountPercent,
			EligibleProductIDs: p.FlashSale.EligibleProductIDs,
		}
	case entities.PromotionMixMatch:
		if p.MixMatch == nil {
			return nil, entities.ErrInvalidPromotionType
		}
		payload = mixMatchPayload{
			MinItems:           p.MixMatch.MinItems,
			BundlePrice:        p.MixMatch.BundlePrice,
			EligibleCategories: p.MixMatch.EligibleCategories,
		}
	default:
		return nil, fmt.Errorf("%w: %s", entities.ErrInvalidPromotionType, p.Type)
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode promotion payload: %w", err)
	}
	promotionDB.Payload = encoded

	return promotionDB, nil
}
