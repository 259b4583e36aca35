package promotions_get

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/generated/dto"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promotionEntities, err := h.service.GetPromotions(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	promotionDTOs := make([]dto.Promotion, len(promotionEntities))
	for i, promotionEntity := range promotionEntities {
		promotionDTOs[i].ID = promotionEntity.ID
		promotionDTOs[i].StoreID = promotionEntity.StoreID
		promotionDTOs[i].Name = promotionEntity.Name
		promotionDTOs[i].Type = promotionEntity.Type.String()
		promotionDTOs[i].Active = promotionEntity.Active
		promotionDTOs[i].CreatedAt = promotionEntity.CreatedAt
		promotionDTOs[i].UpdatedAt = promotionEntity.UpdatedAt
		if promotionEntity.FlashSale != nil {
			promotionDTOs[i].FlashSale = &dto.FlashSalePayload{
				StartsAt:           promotionEntity.FlashSale.StartsAt,
				EndsAt:             promotionEntity.FlashSale.EndsAt,
				DiscountPercent:    promotionEntity.FlashSale.DiscountPercent,
				EligibleProductIDs: promotionEntity.FlashSale.EligibleProductIDs,
			}
		}
		if promotionEntity.MixMatch != nil {
			promotionDTOs[i].MixMatch = &dto.MixMatchPayload{
				MinItems:           promotionEntity.MixMatch.MinItems,
				BundlePrice:        promotionEntity.MixMatch.BundlePrice,
				EligibleCategories: promotionEntity.MixMatch.EligibleCategories,
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(promotionDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
