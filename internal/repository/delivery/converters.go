package delivery

import (
	"marketplace/internal/entities"
)

const (
	defaultStoreName    = "Unknown Store"
	defaultCustomerName = "Customer"
	defaultValue        = "N/A"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	notes := ""
	if d.Notes != nil {
		notes = *d.Notes
	}

	return &entities.Delivery{
		ID:          d.ID,
		OrderNumber: d.OrderNumber,
		StoreID:     d.StoreID,
		Status:      entities.DeliveryStatusType(d.Status),
		DriverID:    d.DriverID,
		Fee:         d.Fee,
		Notes:       notes,
		AssignedAt:  d.AssignedAt,
		PickedUpAt:  d.PickedUpAt,
		DeliveredAt: d.DeliveredAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{
		ID:          d.ID,
		OrderNumber: d.OrderNumber,
		StoreID:     d.StoreID,
		DriverID:    d.DriverID,
		Fee:         d.Fee,
		Notes:       d.Notes,
		AssignedAt:  d.AssignedAt,
		PickedUpAt:  d.PickedUpAt,
		DeliveredAt: d.DeliveredAt,
	}

	if d.Status != nil {
		status := d.Status.String()
		deliveryModifyDB.Status = &status
	}

	return deliveryModifyDB
}

// ToViewDomain плоская карточка: все NULL уже добиты дефолтами,
// рендеру не нужно ветвиться.
func ToViewDomain(v *DeliveryViewDB) entities.DeliveryView {
	return entities.DeliveryView{
		ID:            v.ID,
		OrderNumber:   v.OrderNumber,
		Status:        entities.DeliveryStatusType(v.Status),
		StoreName:     stringOrDefault(v.StoreName, defaultStoreName),
		CustomerName:  stringOrDefault(v.CustomerName, defaultCustomerName),
		CustomerPhone: stringOrDefault(v.CustomerPhone, defaultValue),
		Address:       stringOrDefault(v.Address, defaultValue),
		DriverName:    stringOrDefault(v.DriverName, defaultValue),
		DriverPhone:   stringOrDefault(v.DriverPhone, defaultValue),
		Fee:           v.Fee,
		Notes:         stringOrDefault(v.Notes, ""),
		AssignedAt:    v.AssignedAt,
		PickedUpAt:    v.PickedUpAt,
		DeliveredAt:   v.DeliveredAt,
	}
}

func ToCandidateDomain(c *CandidateDB) (entities.AssignmentCandidate, error) {
	candidate := entities.AssignmentCandidate{
		Driver: entities.Driver{
			ID:          c.ID,
			Name:        c.Name,
			Phone:       c.Phone,
			VehicleType: entities.DriverVehicleType(c.VehicleType),
			IsAvailable: true,
		},
		ActiveDeliveries: c.ActiveDeliveries,
	}

	if c.Location != nil {
		point, err := entities.ParsePoint(*c.Location)
		if err != nil {
			return entities.AssignmentCandidate{}, err
		}
		candidate.Driver.Location = &point
	}

	return candidate, nil
}

func stringOrDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
