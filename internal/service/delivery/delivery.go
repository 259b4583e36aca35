package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/location"
)

type Delivery struct {
	repository      Repository
	driverService   DriverService
	locationService LocationService
	scoreFactory    ScoreFactory
	txManager       TxManager
}

func New(
	repository Repository,
	driverService DriverService,
	locationService LocationService,
	scoreFactory ScoreFactory,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:      repository,
		driverService:   driverService,
		locationService: locationService,
		scoreFactory:    scoreFactory,
		txManager:       txManager,
	}
}

// StatusBoard возвращает все активные колонки доски в каноническом порядке.
// Каждая доставка попадает ровно в одну колонку.
func (d *Delivery) StatusBoard(ctx context.Context) ([]entities.BoardColumn, error) {
	views, err := d.repository.GetAllViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("get deliveries for board: %w", err)
	}

	byStatus := make(map[entities.DeliveryStatusType][]entities.DeliveryView, len(entities.BoardStatuses))
	for _, view := range views {
		byStatus[view.Status] = append(byStatus[view.Status], view)
	}

	columns := make([]entities.BoardColumn, 0, len(entities.BoardStatuses))
	for _, status := range entities.BoardStatuses {
		columns = append(columns, entities.BoardColumn{
			Status:     status,
			Deliveries: byStatus[status],
		})
	}
	return columns, nil
}

// ChangeStatus переводит доставку в новый статус по таблице переходов.
// Запрос в текущий статус — no-op, запись не трогаем.
func (d *Delivery) ChangeStatus(ctx context.Context, deliveryID int64, newStatus entities.DeliveryStatusType) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !entities.IsValidDeliveryStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var result *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if delivery.Status == newStatus {
			result = delivery
			return nil
		}

		if !delivery.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, delivery.Status, newStatus)
		}

		// Уход в failed освобождает водителя и снимает привязку,
		// как и при отмене заказа. Retry failed -> pending стартует без водителя.
		if newStatus == entities.DeliveryFailed {
			if delivery.DriverID != nil {
				if err := d.freeDriver(ctx, *delivery.DriverID); err != nil {
					return err
				}
			}
			if err := d.repository.Fail(ctx, delivery.ID); err != nil {
				return fmt.Errorf("fail delivery: %w", err)
			}
			result, err = d.repository.GetByID(ctx, delivery.ID)
			if err != nil {
				return fmt.Errorf("get delivery: %w", err)
			}
			return nil
		}

		deliveryModify := entities.DeliveryModify{
			ID:     &deliveryID,
			Status: &newStatus,
		}
		stampTime := time.Now().UTC()
		switch newStatus.RequiredStamp() {
		case entities.StampAssigned:
			deliveryModify.AssignedAt = &stampTime
		case entities.StampPickedUp:
			deliveryModify.PickedUpAt = &stampTime
		case entities.StampDelivered:
			deliveryModify.DeliveredAt = &stampTime
		case entities.StampNone:
		}

		result, err = d.repository.Update(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AssignDriver вручную назначает водителя на pending-доставку.
func (d *Delivery) AssignDriver(ctx context.Context, deliveryID, driverID int64) (*entities.DeliveryAssignment, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	assignment := entities.DeliveryAssignment{}
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}
		if delivery.Status != entities.DeliveryPending {
			return fmt.Errorf("%w: status %s", ErrDeliveryNotPending, delivery.Status)
		}

		driver, err := d.driverService.GetDriver(ctx, driverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		if !driver.IsAvailable {
			return ErrDriverUnavailable
		}

		updated, err := d.assign(ctx, delivery, driver)
		if err != nil {
			return err
		}

		assignment = entities.DeliveryAssignment{
			DeliveryID:  updated.ID,
			OrderNumber: updated.OrderNumber,
			DriverID:    driver.ID,
			DriverName:  driver.Name,
			AssignedAt:  *updated.AssignedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// AutoAssign подбирает лучшего кандидата по score. Отсутствие кандидатов
// или координат магазина — мягкая неуспешность, не ошибка.
func (d *Delivery) AutoAssign(ctx context.Context, deliveryID int64) (*entities.AssignmentResult, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	result := entities.AssignmentResult{}
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}
		if delivery.Status != entities.DeliveryPending {
			return fmt.Errorf("%w: status %s", ErrDeliveryNotPending, delivery.Status)
		}

		storePoint, err := d.locationService.GetStorePoint(ctx, delivery.StoreID)
		if err != nil {
			if errors.Is(err, location.ErrLocationNotFound) {
				result = entities.AssignmentResult{Error: "store location unknown"}
				return nil
			}
			return fmt.Errorf("get store point: %w", err)
		}

		candidates, err := d.repository.GetAssignmentCandidates(ctx)
		if err != nil {
			return fmt.Errorf("get assignment candidates: %w", err)
		}
		if len(candidates) == 0 {
			result = entities.AssignmentResult{Error: "no available drivers"}
			return nil
		}

		best := candidates[0]
		bestScore, bestDistance := d.scoreFactory.Score(best, *storePoint)
		for _, candidate := range candidates[1:] {
			score, distance := d.scoreFactory.Score(candidate, *storePoint)
			if score > bestScore {
				best, bestScore, bestDistance = candidate, score, distance
			}
		}

		_, err = d.assign(ctx, delivery, &best.Driver)
		if err != nil {
			return err
		}

		result = entities.AssignmentResult{
			Success:    true,
			DriverID:   best.Driver.ID,
			DriverName: best.Driver.Name,
			Score:      bestScore,
			DistanceKm: bestDistance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// assign общая часть ручного и автоматического назначения:
// переводит доставку в assigned и занимает водителя.
func (d *Delivery) assign(ctx context.Context, delivery *entities.Delivery, driver *entities.Driver) (*entities.Delivery, error) {
	assignedStatus := entities.DeliveryAssigned
	assignTime := time.Now().UTC()

	deliveryModify := entities.DeliveryModify{
		ID:         &delivery.ID,
		Status:     &assignedStatus,
		DriverID:   &driver.ID,
		AssignedAt: &assignTime,
	}

	updated, err := d.repository.Update(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("assign delivery: %w", err)
	}

	busy := false
	driverModify := entities.DriverModify{
		ID:          &driver.ID,
		IsAvailable: &busy,
	}
	_, err = d.driverService.UpdateDriver(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("update driver availability: %w", err)
	}

	return updated, nil
}

// ReleaseStaleAssignments возвращает зависшие в assigned доставки в pending
// и освобождает их водителей одним запросом.
func (d *Delivery) ReleaseStaleAssignments(ctx context.Context, maxAge time.Duration) (int64, error) {
	assignedBefore := time.Now().UTC().Add(-maxAge)

	released, err := d.repository.ReleaseStaleAssignments(ctx, assignedBefore)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("release timed out: %w", err)
		}
		return 0, fmt.Errorf("release stale assignments: %w", err)
	}

	return released, nil
}

// CreateFromOrder создаёт pending-доставку из подтверждённого заказа.
// Pickup-заказы доставки не порождают.
func (d *Delivery) CreateFromOrder(ctx context.Context, order *entities.Order) (*entities.Delivery, error) {
	if order == nil || !isValidOrderNumber(order.Number) {
		return nil, ErrDeliveryNotFound
	}
	if order.FulfillmentType != entities.FulfillmentDelivery {
		return nil, fmt.Errorf("%w: %s", ErrNotDeliveryOrder, order.FulfillmentType)
	}

	pendingStatus := entities.DeliveryPending
	deliveryModify := entities.DeliveryModify{
		OrderNumber: &order.Number,
		StoreID:     &order.StoreID,
		Status:      &pendingStatus,
		Fee:         &order.DeliveryFee,
		Notes:       &order.Notes,
	}

	delivery, err := d.repository.Create(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	return delivery, nil
}

// FailByOrder отменённый заказ: доставка помечается failed, водитель
// освобождается. Отмена заказа имеет приоритет над обычным потоком статусов.
func (d *Delivery) FailByOrder(ctx context.Context, orderNumber string) error {
	if !isValidOrderNumber(orderNumber) {
		return ErrDeliveryNotFound
	}

	return d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.GetByOrderNumber(ctx, orderNumber)
		if err != nil {
			return fmt.Errorf("get delivery by order: %w", err)
		}

		if delivery.DriverID != nil {
			if err := d.freeDriver(ctx, *delivery.DriverID); err != nil {
				return err
			}
		}

		err = d.repository.Fail(ctx, delivery.ID)
		if err != nil {
			return fmt.Errorf("fail delivery: %w", err)
		}
		return nil
	})
}

// FreeDriverByOrder завершённый заказ: водитель снова доступен.
func (d *Delivery) FreeDriverByOrder(ctx context.Context, orderNumber string) error {
	if !isValidOrderNumber(orderNumber) {
		return ErrDeliveryNotFound
	}

	return d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.GetByOrderNumber(ctx, orderNumber)
		if err != nil {
			return fmt.Errorf("get delivery by order: %w", err)
		}

		if delivery.DriverID == nil {
			return nil
		}
		return d.freeDriver(ctx, *delivery.DriverID)
	})
}

func (d *Delivery) freeDriver(ctx context.Context, driverID int64) error {
	available := true
	driverModify := entities.DriverModify{
		ID:          &driverID,
		IsAvailable: &available,
	}

	_, err := d.driverService.UpdateDriver(ctx, driverModify)
	if err != nil {
		return fmt.Errorf("free driver: %w", err)
	}
	return nil
}
