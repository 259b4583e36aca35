//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	GetByNumber(ctx context.Context, orderNumber string) (*entities.Order, error)
}

type DeliveryService interface {
	CreateFromOrder(ctx context.Context, order *entities.Order) (*entities.Delivery, error)
	FailByOrder(ctx context.Context, orderNumber string) error
	FreeDriverByOrder(ctx context.Context, orderNumber string) error
}

type (
	ExecuteFn      func(ctx context.Context, order *entities.Order) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
