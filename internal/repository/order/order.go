package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type orderDB struct {
	Number          string
	StoreID         int64
	CustomerName    string
	CustomerPhone   *string
	DeliveryAddress *string
	FulfillmentType string
	Status          string
	DeliveryFee     float64
	Notes           *string
	CreatedAt       time.Time
}

func (r *Repository) GetByNumber(ctx context.Context, orderNumber string) (*entities.Order, error) {
	query := `
		SELECT number, store_id, customer_name, customer_phone, delivery_address,
			fulfillment_type, status, COALESCE(delivery_fee, 0), notes, created_at
		FROM orders
		WHERE number = $1
	`

	var orderModel orderDB
	err := r.querier.QueryRow(ctx, query, orderNumber).Scan(
		&orderModel.Number,
		&orderModel.StoreID,
		&orderModel.CustomerName,
		&orderModel.CustomerPhone,
		&orderModel.DeliveryAddress,
		&orderModel.FulfillmentType,
		&orderModel.Status,
		&orderModel.DeliveryFee,
		&orderModel.Notes,
		&orderModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return toDomain(&orderModel), nil
}

func toDomain(o *orderDB) *entities.Order {
	orderEntity := &entities.Order{
		Number:          o.Number,
		StoreID:         o.StoreID,
		CustomerName:    o.CustomerName,
		FulfillmentType: entities.FulfillmentType(o.FulfillmentType),
		Status:          entities.OrderStatusType(o.Status),
		DeliveryFee:     o.DeliveryFee,
		CreatedAt:       o.CreatedAt,
	}

	if o.CustomerPhone != nil {
		orderEntity.CustomerPhone = *o.CustomerPhone
	}
	if o.DeliveryAddress != nil {
		orderEntity.DeliveryAddress = *o.DeliveryAddress
	}
	if o.Notes != nil {
		orderEntity.Notes = *o.Notes
	}

	return orderEntity
}
