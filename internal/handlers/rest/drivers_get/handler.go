package drivers_get

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
	onlyAvailable := r.URL.Query().Get("available") == "true"

	driverEntities, err := h.service.GetDrivers(r.Context(), onlyAvailable)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	driverDTOs := make([]dto.Driver, len(driverEntities))
	for i, driverEntity := range driverEntities {
		driverDTOs[i].ID = driverEntity.ID
		driverDTOs[i].Name = driverEntity.Name
		driverDTOs[i].Phone = driverEntity.Phone
		driverDTOs[i].VehicleType = driverEntity.VehicleType.String()
		driverDTOs[i].IsAvailable = driverEntity.IsAvailable
		if driverEntity.Location != nil {
			driverDTOs[i].Location = &dto.GeoPoint{
				Lat: driverEntity.Location.Lat,
				Lng: driverEntity.Location.Lng,
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(driverDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
