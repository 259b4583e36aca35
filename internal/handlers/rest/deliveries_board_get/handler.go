package deliveries_board_get

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/entities"
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
	columnEntities, err := h.service.StatusBoard(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	columnDTOs := make([]dto.BoardColumn, len(columnEntities))
	for i, column := range columnEntities {
		columnDTOs[i].Status = column.Status.String()
		columnDTOs[i].Deliveries = make([]dto.DeliveryView, len(column.Deliveries))
		for j, view := range column.Deliveries {
			columnDTOs[i].Deliveries[j] = toViewDTO(view)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(columnDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toViewDTO(view entities.DeliveryView) dto.DeliveryView {
	return dto.DeliveryView{
		ID:            view.ID,
		OrderNumber:   view.OrderNumber,
		Status:        view.Status.String(),
		StoreName:     view.StoreName,
		CustomerName:  view.CustomerName,
		CustomerPhone: view.CustomerPhone,
		Address:       view.Address,
		DriverName:    view.DriverName,
		DriverPhone:   view.DriverPhone,
		Fee:           view.Fee,
		Notes:         view.Notes,
		AssignedAt:    view.AssignedAt,
		PickedUpAt:    view.PickedUpAt,
		DeliveredAt:   view.DeliveredAt,
	}
}
