package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	query := `
		INSERT INTO deliveries (order_number, store_id, status, fee, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, order_number, store_id, status, driver_id, COALESCE(fee, 0), notes,
			assigned_at, picked_up_at, delivered_at, created_at, updated_at
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyDB.OrderNumber,
		deliveryModifyDB.StoreID,
		deliveryModifyDB.Status,
		deliveryModifyDB.Fee,
		deliveryModifyDB.Notes,
	).Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderNumber,
		&deliveryDB.StoreID,
		&deliveryDB.Status,
		&deliveryDB.DriverID,
		&deliveryDB.Fee,
		&deliveryDB.Notes,
		&deliveryDB.AssignedAt,
		&deliveryDB.PickedUpAt,
		&deliveryDB.DeliveredAt,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrDeliveryAlreadyExist
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `
		SELECT id, order_number, store_id, status, driver_id, COALESCE(fee, 0), notes,
			assigned_at, picked_up_at, delivered_at, created_at, updated_at
		FROM deliveries
		WHERE id = $1
	`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByOrderNumber(ctx context.Context, orderNumber string) (*entities.Delivery, error) {
	query := `
		SELECT id, order_number, store_id, status, driver_id, COALESCE(fee, 0), notes,
			assigned_at, picked_up_at, delivered_at, created_at, updated_at
		FROM deliveries
		WHERE order_number = $1
	`

	return r.getOne(ctx, query, orderNumber)
}

func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	builder := qb.
		Update("deliveries")

	// опциональные поля
	if deliveryModifyDB.Status != nil {
		builder = builder.Set("status", deliveryModifyDB.Status)
	}
	if deliveryModifyDB.DriverID != nil {
		builder = builder.Set("driver_id", deliveryModifyDB.DriverID)
	}
	if deliveryModifyDB.Fee != nil {
		builder = builder.Set("fee", deliveryModifyDB.Fee)
	}
	if deliveryModifyDB.Notes != nil {
		builder = builder.Set("notes", deliveryModifyDB.Notes)
	}
	if deliveryModifyDB.AssignedAt != nil {
		builder = builder.Set("assigned_at", deliveryModifyDB.AssignedAt)
	}
	if deliveryModifyDB.PickedUpAt != nil {
		builder = builder.Set("picked_up_at", deliveryModifyDB.PickedUpAt)
	}
	if deliveryModifyDB.DeliveredAt != nil {
		builder = builder.Set("delivered_at", deliveryModifyDB.DeliveredAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryModifyDB.ID}).
		Suffix(`RETURNING id, order_number, store_id, status, driver_id, COALESCE(fee, 0), notes,
			assigned_at, picked_up_at, delivered_at, created_at, updated_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var deliveryDB DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderNumber,
		&deliveryDB.StoreID,
		&deliveryDB.Status,
		&deliveryDB.DriverID,
		&deliveryDB.Fee,
		&deliveryDB.Notes,
		&deliveryDB.AssignedAt,
		&deliveryDB.PickedUpAt,
		&deliveryDB.DeliveredAt,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) Fail(ctx context.Context, id int64) error {
	query := `
		UPDATE deliveries
		SET status = 'failed',
			driver_id = NULL,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository fail error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

func (r *Repository) GetAllViews(ctx context.Context) ([]entities.DeliveryView, error) {
	query := `
		SELECT
			d.id,
			d.order_number,
			d.status,
			sl.name,
			o.customer_name,
			o.customer_phone,
			o.delivery_address,
			dr.name,
			dr.phone,
			COALESCE(d.fee, 0),
			d.notes,
			d.assigned_at,
			d.picked_up_at,
			d.delivered_at
		FROM deliveries d
		LEFT JOIN orders o ON o.number = d.order_number
		LEFT JOIN store_locations sl ON sl.store_id = d.store_id
		LEFT JOIN drivers dr ON dr.id = d.driver_id
		ORDER BY d.created_at DESC, d.id DESC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get views error: %w", err)
	}
	defer rows.Close()

	var views []entities.DeliveryView
	for rows.Next() {
		var viewDB DeliveryViewDB
		err = rows.Scan(
			&viewDB.ID,
			&viewDB.OrderNumber,
			&viewDB.Status,
			&viewDB.StoreName,
			&viewDB.CustomerName,
			&viewDB.CustomerPhone,
			&viewDB.Address,
			&viewDB.DriverName,
			&viewDB.DriverPhone,
			&viewDB.Fee,
			&viewDB.Notes,
			&viewDB.AssignedAt,
			&viewDB.PickedUpAt,
			&viewDB.DeliveredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository scan view error: %w", err)
		}
		views = append(views, ToViewDomain(&viewDB))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository rows error: %w", err)
	}

	return views, nil
}

func (r *Repository) GetAssignmentCandidates(ctx context.Context) ([]entities.AssignmentCandidate, error) {
	query := `
		SELECT
			dr.id, dr.name, dr.phone, dr.vehicle_type, dr.location,
			COUNT(d.id) FILTER (WHERE d.status IN ('assigned', 'picked_up', 'in_transit'))
		FROM drivers dr
		LEFT JOIN deliveries d ON d.driver_id = dr.id
		WHERE dr.is_available = TRUE
			AND dr.location IS NOT NULL
		GROUP BY dr.id
		ORDER BY dr.id ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get candidates error: %w", err)
	}
	defer rows.Close()

	var candidates []entities.AssignmentCandidate
	for rows.Next() {
		var candidateDB CandidateDB
		err = rows.Scan(
			&candidateDB.ID,
			&candidateDB.Name,
			&candidateDB.Phone,
			&candidateDB.VehicleType,
			&candidateDB.Location,
			&candidateDB.ActiveDeliveries,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository scan candidate error: %w", err)
		}

		candidate, err := ToCandidateDomain(&candidateDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository candidate location error: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository rows error: %w", err)
	}

	return candidates, nil
}

// ReleaseStaleAssignments возвращает зависшие assigned-доставки в pending
// и освобождает их водителей одним запросом.
func (r *Repository) ReleaseStaleAssignments(ctx context.Context, assignedBefore time.Time) (int64, error) {
	query := `
		WITH released AS (
			UPDATE deliveries
			SET status = 'pending',
				driver_id = NULL,
				assigned_at = NULL,
				updated_at = NOW()
			WHERE status = 'assigned'
				AND assigned_at < $1
			RETURNING driver_id
		), freed AS (
			UPDATE drivers
			SET is_available = TRUE,
				updated_at = NOW()
			WHERE id IN (SELECT driver_id FROM released WHERE driver_id IS NOT NULL)
		)
		SELECT COUNT(*) FROM released
	`

	var released int64
	err := r.querier.QueryRow(ctx, query, assignedBefore).Scan(&released)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository release stale error: %w", err)
	}

	return released, nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Delivery, error) {
	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderNumber,
		&deliveryDB.StoreID,
		&deliveryDB.Status,
		&deliveryDB.DriverID,
		&deliveryDB.Fee,
		&deliveryDB.Notes,
		&deliveryDB.AssignedAt,
		&deliveryDB.PickedUpAt,
		&deliveryDB.DeliveredAt,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}
