package locations_get

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
	locationEntities, err := h.service.GetLocations(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	locationDTOs := make([]dto.StoreLocation, len(locationEntities))
	for i, locationEntity := range locationEntities {
		locationDTOs[i] = toLocationDTO(locationEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(locationDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toLocationDTO(locationEntity entities.StoreLocation) dto.StoreLocation {
	hours := make([]dto.DayHours, entities.DaySlots)
	for i, day := range locationEntity.Hours {
		hours[i] = dto.DayHours{
			Open:   day.Open,
			Close:  day.Close,
			IsOpen: day.IsOpen,
		}
	}

	return dto.StoreLocation{
		ID:      locationEntity.ID,
		StoreID: locationEntity.StoreID,
		Name:    locationEntity.Name,
		Address: locationEntity.Address,
		Point: dto.GeoPoint{
			Lat: locationEntity.Point.Lat,
			Lng: locationEntity.Point.Lng,
		},
		Hours:            hours,
		PickupEnabled:    locationEntity.PickupEnabled,
		DeliveryEnabled:  locationEntity.DeliveryEnabled,
		CoverageRadiusKm: locationEntity.CoverageRadiusKm,
		CreatedAt:        locationEntity.CreatedAt,
		UpdatedAt:        locationEntity.UpdatedAt,
	}
}
