package promotion_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/promotion"
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
	var promotionCreateDTO dto.PromotionCreate
	err := json.NewDecoder(r.Body).Decode(&promotionCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var id int64
	switch promotionCreateDTO.Type {
	case dto.FlashSale:
		if promotionCreateDTO.FlashSale == nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		id, err = h.service.CreateFlashSale(
			r.Context(),
			promotionCreateDTO.StoreID,
			promotionCreateDTO.Name,
			entities.FlashSale{
				StartsAt:           promotionCreateDTO.FlashSale.StartsAt,
				EndsAt:             promotionCreateDTO.FlashSale.EndsAt,
				DiscountPercent:    promotionCreateDTO.FlashSale.DiscountPercent,
				EligibleProductIDs: promotionCreateDTO.FlashSale.EligibleProductIDs,
			},
		)
	case dto.MixMatch:
		if promotionCreateDTO.MixMatch == nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		id, err = h.service.CreateMixMatchDeal(
			r.Context(),
			promotionCreateDTO.StoreID,
			promotionCreateDTO.Name,
			entities.MixMatchDeal{
				MinItems:           promotionCreateDTO.MixMatch.MinItems,
				BundlePrice:        promotionCreateDTO.MixMatch.BundlePrice,
				EligibleCategories: promotionCreateDTO.MixMatch.EligibleCategories,
			},
		)
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, promotion.ErrInvalidStoreID),
			errors.Is(err, promotion.ErrInvalidName),
			errors.Is(err, entities.ErrInvalidPromotionWindow),
			errors.Is(err, entities.ErrInvalidDiscount),
			errors.Is(err, entities.ErrNoEligibleProducts),
			errors.Is(err, entities.ErrTooFewItems),
			errors.Is(err, entities.ErrInvalidBundlePrice),
			errors.Is(err, entities.ErrNoEligibleCategories):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PromotionCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
