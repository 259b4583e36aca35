package location_put

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
	var locationUpdateDTO dto.StoreLocationUpdate
	err := json.NewDecoder(r.Body).Decode(&locationUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	locationModifyEntity := entities.StoreLocationModify{
		ID: &locationUpdateDTO.ID,
	}

	// Опциональные параметры
	if locationUpdateDTO.Name != nil {
		locationModifyEntity.Name = locationUpdateDTO.Name
	}
	if locationUpdateDTO.Address != nil {
		locationModifyEntity.Address = locationUpdateDTO.Address
	}
	if locationUpdateDTO.Point != nil {
		locationModifyEntity.Point = &entities.GeoPoint{
			Lat: locationUpdateDTO.Point.Lat,
			Lng: locationUpdateDTO.Point.Lng,
		}
	}
	if locationUpdateDTO.Hours != nil {
		if len(*locationUpdateDTO.Hours) != entities.DaySlots {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var hours [entities.DaySlots]entities.DayHours
		for i, day := range *locationUpdateDTO.Hours {
			hours[i] = entities.DayHours{
				Open:   day.Open,
				Close:  day.Close,
				IsOpen: day.IsOpen,
			}
		}
		locationModifyEntity.Hours = &hours
	}
	if locationUpdateDTO.PickupEnabled != nil {
		locationModifyEntity.PickupEnabled = locationUpdateDTO.PickupEnabled
	}
	if locationUpdateDTO.DeliveryEnabled != nil {
		locationModifyEntity.DeliveryEnabled = locationUpdateDTO.DeliveryEnabled
	}
	if locationUpdateDTO.CoverageRadiusKm != nil {
		locationModifyEntity.CoverageRadiusKm = locationUpdateDTO.CoverageRadiusKm
	}

	res, err := h.service.UpdateLocation(r.Context(), locationModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrMissingRequiredFields),
			errors.Is(err, location.ErrInvalidLocationID),
			errors.Is(err, location.ErrInvalidStoreID),
			errors.Is(err, location.ErrInvalidName),
			errors.Is(err, location.ErrInvalidPoint),
			errors.Is(err, location.ErrInvalidHours),
			errors.Is(err, location.ErrInvalidRadius):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, location.ErrLocationNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, location.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	hours := make([]dto.DayHours, entities.DaySlots)
	for i, day := range res.Hours {
		hours[i] = dto.DayHours{
			Open:   day.Open,
			Close:  day.Close,
			IsOpen: day.IsOpen,
		}
	}
	response := dto.StoreLocation{
		ID:      res.ID,
		StoreID: res.StoreID,
		Name:    res.Name,
		Address: res.Address,
		Point: dto.GeoPoint{
			Lat: res.Point.Lat,
			Lng: res.Point.Lng,
		},
		Hours:            hours,
		PickupEnabled:    res.PickupEnabled,
		DeliveryEnabled:  res.DeliveryEnabled,
		CoverageRadiusKm: res.CoverageRadiusKm,
		CreatedAt:        res.CreatedAt,
		UpdatedAt:        res.UpdatedAt,
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
