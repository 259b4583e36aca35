package order_handle

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/service/delivery"
	"marketplace/internal/service/order"
)

type StatusHandlerFactory struct {
	deliveryService order.DeliveryService
}

func NewStatusHandlerFactory(deliveryService order.DeliveryService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		deliveryService: deliveryService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderConfirmed:
		return f.confirmedHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderCompleted:
		return f.completedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) confirmedHandler(ctx context.Context, orderEntity *entities.Order) error {
	_, err := f.deliveryService.CreateFromOrder(ctx, orderEntity)
	if err != nil {
		// pickup-заказы доставки не порождают
		if errors.Is(err, delivery.ErrNotDeliveryOrder) {
			return nil
		}
		return fmt.Errorf("create delivery for confirmed order %s: %w", orderEntity.Number, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderEntity *entities.Order) error {
	err := f.deliveryService.FailByOrder(ctx, orderEntity.Number)
	if err != nil {
		return fmt.Errorf("fail delivery for cancelled order %s: %w", orderEntity.Number, err)
	}
	return nil
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, orderEntity *entities.Order) error {
	err := f.deliveryService.FreeDriverByOrder(ctx, orderEntity.Number)
	if err != nil {
		return fmt.Errorf("free driver for completed order %s: %w", orderEntity.Number, err)
	}
	return nil
}
