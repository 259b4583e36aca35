package driver

import "marketplace/internal/entities"

func ToDomain(d *DriverDB) (*entities.Driver, error) {
	if d == nil {
		return nil, nil
	}

	driverEntity := &entities.Driver{
		ID:          d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		VehicleType: entities.DriverVehicleType(d.VehicleType),
		IsAvailable: d.IsAvailable,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}

	if d.Location != nil {
		point, err := entities.ParsePoint(*d.Location)
		if err != nil {
			return nil, err
		}
		driverEntity.Location = &point
	}

	return driverEntity, nil
}

func FromDomainModify(d *entities.DriverModify) *DriverModifyDB {
	if d == nil {
		return nil
	}

	driverModifyDB := &DriverModifyDB{
		ID:          d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		IsAvailable: d.IsAvailable,
	}

	if d.VehicleType != nil {
		vehicleType := d.VehicleType.String()
		driverModifyDB.VehicleType = &vehicleType
	}
	if d.Location != nil {
		location := d.Location.String()
		driverModifyDB.Location = &location
	}

	return driverModifyDB
}
