package delivery_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/delivery"
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
	var statusChangeDTO dto.DeliveryStatusChangeRequest
	err := json.NewDecoder(r.Body).Decode(&statusChangeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryEntity, err := h.service.ChangeStatus(
		r.Context(),
		statusChangeDTO.DeliveryID,
		entities.DeliveryStatusType(statusChangeDTO.Status),
	)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrIllegalTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Delivery{
		ID:          deliveryEntity.ID,
		OrderNumber: deliveryEntity.OrderNumber,
		StoreID:     deliveryEntity.StoreID,
		Status:      deliveryEntity.Status.String(),
		DriverID:    deliveryEntity.DriverID,
		Fee:         deliveryEntity.Fee,
		Notes:       deliveryEntity.Notes,
		AssignedAt:  deliveryEntity.AssignedAt,
		PickedUpAt:  deliveryEntity.PickedUpAt,
		DeliveredAt: deliveryEntity.DeliveredAt,
		CreatedAt:   deliveryEntity.CreatedAt,
		UpdatedAt:   deliveryEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
