package location

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Location struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Location {
	return &Location{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Location) CreateLocation(ctx context.Context, locationModify entities.StoreLocationModify) (int64, error) {
	if locationModify.StoreID == nil ||
		locationModify.Name == nil ||
		locationModify.Address == nil ||
		locationModify.Point == nil {
		return 0, ErrMissingRequiredFields
	}

	if *locationModify.StoreID <= 0 {
		return 0, ErrInvalidStoreID
	}
	if !isValidName(*locationModify.Name) {
		return 0, ErrInvalidName
	}
	if !locationModify.Point.InRange() {
		return 0, ErrInvalidPoint
	}
	if locationModify.Hours != nil && !isValidHours(*locationModify.Hours) {
		return 0, ErrInvalidHours
	}
	if locationModify.CoverageRadiusKm != nil && *locationModify.CoverageRadiusKm < 0 {
		return 0, ErrInvalidRadius
	}

	id, err := s.repository.Create(ctx, locationModify)
	if err != nil {
		return 0, fmt.Errorf("create store location: %w", err)
	}
	return id, nil
}

func (s *Location) UpdateLocation(ctx context.Context, locationModify entities.StoreLocationModify) (*entities.StoreLocation, error) {
	if locationModify.ID == nil || *locationModify.ID <= 0 {
		return nil, ErrInvalidLocationID
	}

	if locationModify.Name == nil &&
		locationModify.Address == nil &&
		locationModify.Point == nil &&
		locationModify.Hours == nil &&
		locationModify.PickupEnabled == nil &&
		locationModify.DeliveryEnabled == nil &&
		locationModify.CoverageRadiusKm == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if locationModify.Name != nil && !isValidName(*locationModify.Name) {
		return nil, ErrInvalidName
	}
	if locationModify.Point != nil && !locationModify.Point.InRange() {
		return nil, ErrInvalidPoint
	}
	if locationModify.Hours != nil && !isValidHours(*locationModify.Hours) {
		return nil, ErrInvalidHours
	}
	if locationModify.CoverageRadiusKm != nil && *locationModify.CoverageRadiusKm < 0 {
		return nil, ErrInvalidRadius
	}

	location, err := s.repository.Update(ctx, locationModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update store location: %w", err)
	}
	return location, nil
}

func (s *Location) GetLocations(ctx context.Context) ([]entities.StoreLocation, error) {
	locations, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get store locations: %w", err)
	}
	return locations, nil
}

func (s *Location) GetStorePoint(ctx context.Context, storeID int64) (*entities.GeoPoint, error) {
	if storeID <= 0 {
		return nil, ErrInvalidStoreID
	}

	point, err := s.repository.GetStorePoint(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("get store point: %w", err)
	}
	return point, nil
}
