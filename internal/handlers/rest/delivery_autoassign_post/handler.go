package delivery_autoassign_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var autoAssignDTO dto.DeliveryAutoAssignRequest
	err := json.NewDecoder(r.Body).Decode(&autoAssignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.AutoAssign(r.Context(), autoAssignDTO.DeliveryID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrDeliveryNotPending):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// Бизнес-отказ (нет кандидатов, нет координат магазина) это
	// полноценный ответ с success=false, HTTP остаётся 200.
	response := dto.DeliveryAutoAssignResponse{
		Success: result.Success,
	}
	if result.Success {
		response.DriverID = &result.DriverID
		response.DriverName = &result.DriverName
		response.AssignmentScore = &result.Score
		response.DistanceKm = &result.DistanceKm
	} else {
		response.Error = &result.Error
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
