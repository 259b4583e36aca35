package location

import (
	"encoding/json"
	"fmt"

	"marketplace/internal/entities"
)

func ToDomain(l *LocationDB) (*entities.StoreLocation, error) {
	if l == nil {
		return nil, nil
	}

	point, err := entities.ParsePoint(l.Point)
	if err != nil {
		return nil, err
	}

	var payload [entities.DaySlots]dayHoursPayload
	if len(l.Hours) > 0 {
		if err := json.Unmarshal(l.Hours, &payload); err != nil {
			return nil, fmt.Errorf("decode hours: %w", err)
		}
	}

	locationEntity := &entities.StoreLocation{
		ID:               l.ID,
		StoreID:          l.StoreID,
		Name:             l.Name,
		Address:          l.Address,
		Point:            point,
		PickupEnabled:    l.PickupEnabled,
		DeliveryEnabled:  l.DeliveryEnabled,
		CoverageRadiusKm: l.CoverageRadiusKm,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
	for i, day := range payload {
		locationEntity.Hours[i] = entities.DayHours{
			Open:   day.Open,
			Close:  day.Close,
			IsOpen: day.IsOpen,
		}
	}

	return locationEntity, nil
}

func FromDomainModify(l *entities.StoreLocationModify) (*LocationModifyDB, error) {
	if l == nil {
		return nil, nil
	}

	locationModifyDB := &LocationModifyDB{
		ID:               l.ID,
		StoreID:          l.StoreID,
		Name:             l.Name,
		Address:          l.Address,
		PickupEnabled:    l.PickupEnabled,
		DeliveryEnabled:  l.DeliveryEnabled,
		CoverageRadiusKm: l.CoverageRadiusKm,
	}

	if l.Point != nil {
		point := l.Point.String()
		locationModifyDB.Point = &point
	}
	if l.Hours != nil {
		var payload [entities.DaySlots]dayHoursPayload
		for i, day := range l.Hours {
			payload[i] = dayHoursPayload{
				Open:   day.Open,
				Close:  day.Close,
				IsOpen: day.IsOpen,
			}
		}

		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode hours: %w", err)
		}
		locationModifyDB.Hours = encoded
	}

	return locationModifyDB, nil
}
