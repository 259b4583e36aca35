package location_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/location"
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
	var locationCreateDTO dto.StoreLocationCreate
	err := json.NewDecoder(r.Body).Decode(&locationCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	locationModifyEntity := entities.StoreLocationModify{
		StoreID: &locationCreateDTO.StoreID,
		Name:    &locationCreateDTO.Name,
		Address: &locationCreateDTO.Address,
		Point: &entities.GeoPoint{
			Lat: locationCreateDTO.Point.Lat,
			Lng: locationCreateDTO.Point.Lng,
		},
	}
	if locationCreateDTO.Hours != nil {
		hours, ok := toHoursEntity(*locationCreateDTO.Hours)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		locationModifyEntity.Hours = hours
	}
	if locationCreateDTO.PickupEnabled != nil {
		locationModifyEntity.PickupEnabled = locationCreateDTO.PickupEnabled
	}
	if locationCreateDTO.DeliveryEnabled != nil {
		locationModifyEntity.DeliveryEnabled = locationCreateDTO.DeliveryEnabled
	}
	if locationCreateDTO.CoverageRadiusKm != nil {
		locationModifyEntity.CoverageRadiusKm = locationCreateDTO.CoverageRadiusKm
	}

	id, err := h.service.CreateLocation(r.Context(), locationModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrMissingRequiredFields),
			errors.Is(err, location.ErrInvalidStoreID),
			errors.Is(err, location.ErrInvalidName),
			errors.Is(err, location.ErrInvalidPoint),
			errors.Is(err, location.ErrInvalidHours),
			errors.Is(err, location.ErrInvalidRadius):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, location.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.StoreLocationCreateResponse{
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

// toHoursEntity расписание в API это массив ровно из семи слотов,
// индекс соответствует time.Weekday.
func toHoursEntity(hoursDTO []dto.DayHours) (*[entities.DaySlots]entities.DayHours, bool) {
	if len(hoursDTO) != entities.DaySlots {
		return nil, false
	}

	var hours [entities.DaySlots]entities.DayHours
	for i, day := range hoursDTO {
		hours[i] = entities.DayHours{
			Open:   day.Open,
			Close:  day.Close,
			IsOpen: day.IsOpen,
		}
	}
	return &hours, true
}
