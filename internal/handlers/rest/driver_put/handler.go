package driver_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/driver"
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
	var driverUpdateDTO dto.DriverUpdate
	err := json.NewDecoder(r.Body).Decode(&driverUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Доступность водителя меняется только сервером (назначение,
	// освобождение, завершение), через API она не редактируется.
	driverModifyEntity := entities.DriverModify{
		ID: &driverUpdateDTO.ID,
	}

	// Опциональные параметры
	if driverUpdateDTO.Name != nil {
		driverModifyEntity.Name = driverUpdateDTO.Name
	}
	if driverUpdateDTO.Phone != nil {
		driverModifyEntity.Phone = driverUpdateDTO.Phone
	}
	if driverUpdateDTO.VehicleType != nil {
		vehicleType := entities.DriverVehicleType(*driverUpdateDTO.VehicleType)
		driverModifyEntity.VehicleType = &vehicleType
	}
	if driverUpdateDTO.Location != nil {
		driverModifyEntity.Location = &entities.GeoPoint{
			Lat: driverUpdateDTO.Location.Lat,
			Lng: driverUpdateDTO.Location.Lng,
		}
	}

	res, err := h.service.UpdateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidDriverID),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidVehicleType),
			errors.Is(err, driver.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Driver{
		ID:          res.ID,
		Name:        res.Name,
		Phone:       res.Phone,
		VehicleType: res.VehicleType.String(),
		IsAvailable: res.IsAvailable,
	}
	if res.Location != nil {
		response.Location = &dto.GeoPoint{
			Lat: res.Location.Lat,
			Lng: res.Location.Lng,
		}
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
