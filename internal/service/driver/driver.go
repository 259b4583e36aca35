package driver

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Driver struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Driver {
	return &Driver{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	if driverModify.Name == nil ||
		driverModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*driverModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*driverModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if driverModify.VehicleType == nil {
		defaultVehicle := entities.DefaultVehicleType
		driverModify.VehicleType = &defaultVehicle
	}
	if !isValidVehicleType(driverModify.VehicleType.String()) {
		return 0, ErrInvalidVehicleType
	}
	if driverModify.Location != nil && !driverModify.Location.InRange() {
		return 0, ErrInvalidLocation
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || *driverModify.ID <= 0 {
		return nil, ErrInvalidDriverID
	}

	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.VehicleType == nil &&
		driverModify.IsAvailable == nil &&
		driverModify.Location == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.VehicleType != nil && !isValidVehicleType(driverModify.VehicleType.String()) {
		return nil, ErrInvalidVehicleType
	}
	if driverModify.Location != nil && !driverModify.Location.InRange() {
		return nil, ErrInvalidLocation
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return driver, nil
}

func (s *Driver) GetDrivers(ctx context.Context, onlyAvailable bool) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx, onlyAvailable)
	if err != nil {
		return nil, fmt.Errorf("get drivers: %w", err)
	}
	return drivers, nil
}
