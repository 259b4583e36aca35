package order

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
)

type Service struct {
	repository    Repository
	statusFactory HandlerFactory
}

func New(repository Repository, statusFactory HandlerFactory) *Service {
	return &Service{
		repository:    repository,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.Number == nil || orderModify.Status == nil {
		return nil, fmt.Errorf("order number and status are required")
	}

	// Верификация события по локальной таблице заказов
	order, err := s.repository.GetByNumber(ctx, *orderModify.Number)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.Status != *orderModify.Status {
		return order, fmt.Errorf("%w: event %s, order %s", ErrStatusMismatch, *orderModify.Status, order.Status)
	}

	executeFn, err := s.statusFactory.GetHandler(order.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
