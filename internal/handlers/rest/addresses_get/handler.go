package addresses_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/generated/dto"
	"marketplace/internal/service/address"
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
	userID := r.URL.Query().Get("user_id")

	addressEntities, err := h.service.GetAddresses(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, address.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	addressDTOs := make([]dto.UserAddress, len(addressEntities))
	for i, addressEntity := range addressEntities {
		addressDTOs[i].ID = addressEntity.ID
		addressDTOs[i].UserID = addressEntity.UserID
		addressDTOs[i].Label = addressEntity.Label
		addressDTOs[i].FullAddress = addressEntity.FullAddress
		addressDTOs[i].IsDefault = addressEntity.IsDefault
		if addressEntity.Point != nil {
			addressDTOs[i].Point = &dto.GeoPoint{
				Lat: addressEntity.Point.Lat,
				Lng: addressEntity.Point.Lng,
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(addressDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
