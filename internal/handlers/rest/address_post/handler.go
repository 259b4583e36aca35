package address_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
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
	var addressCreateDTO dto.UserAddressCreate
	err := json.NewDecoder(r.Body).Decode(&addressCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	addressModifyEntity := entities.UserAddressModify{
		UserID:      &addressCreateDTO.UserID,
		FullAddress: &addressCreateDTO.FullAddress,
	}
	if addressCreateDTO.Label != nil {
		addressModifyEntity.Label = addressCreateDTO.Label
	}
	if addressCreateDTO.Point != nil {
		addressModifyEntity.Point = &entities.GeoPoint{
			Lat: addressCreateDTO.Point.Lat,
			Lng: addressCreateDTO.Point.Lng,
		}
	}
	if addressCreateDTO.IsDefault != nil {
		addressModifyEntity.IsDefault = addressCreateDTO.IsDefault
	}

	id, err := h.service.CreateAddress(r.Context(), addressModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, address.ErrMissingRequiredFields),
			errors.Is(err, address.ErrInvalidUserID),
			errors.Is(err, address.ErrInvalidPoint):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.UserAddressCreateResponse{
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
