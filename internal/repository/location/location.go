package location

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/location"
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

func (r *Repository) Create(ctx context.Context, locationModifyEntity entities.StoreLocationModify) (int64, error) {
	locationModifyModel, err := FromDomainModify(&locationModifyEntity)
	if err != nil {
		return 0, fmt.Errorf("unexpected location repository convert error: %w", err)
	}

	query := `
		INSERT INTO store_locations
			(store_id, name, address, point, hours, pickup_enabled, delivery_enabled, coverage_radius_km)
		VALUES ($1, $2, $3, $4, COALESCE($5, '[]'::jsonb), COALESCE($6, TRUE), COALESCE($7, TRUE), COALESCE($8, 0))
		RETURNING id
	`

	var id int64
	err = r.querier.QueryRow(
		ctx,
		query,
		locationModifyModel.StoreID,
		locationModifyModel.Name,
		locationModifyModel.Address,
		locationModifyModel.Point,
		locationModifyModel.Hours,
		locationModifyModel.PickupEnabled,
		locationModifyModel.DeliveryEnabled,
		locationModifyModel.CoverageRadiusKm,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, location.ErrConflict
		}
		return 0, fmt.Errorf("unexpected location repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, locationModifyEntity entities.StoreLocationModify) (*entities.StoreLocation, error) {
	locationModifyModel, err := FromDomainModify(&locationModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository convert error: %w", err)
	}

	builder := qb.
		Update("store_locations")

	// опциональные поля
	if locationModifyModel.Name != nil {
		builder = builder.Set("name", locationModifyModel.Name)
	}
	if locationModifyModel.Address != nil {
		builder = builder.Set("address", locationModifyModel.Address)
	}
	if locationModifyModel.Point != nil {
		builder = builder.Set("point", locationModifyModel.Point)
	}
	if locationModifyModel.Hours != nil {
		builder = builder.Set("hours", locationModifyModel.Hours)
	}
	if locationModifyModel.PickupEnabled != nil {
		builder = builder.Set("pickup_enabled", locationModifyModel.PickupEnabled)
	}
	if locationModifyModel.DeliveryEnabled != nil {
		builder = builder.Set("delivery_enabled", locationModifyModel.DeliveryEnabled)
	}
	if locationModifyModel.CoverageRadiusKm != nil {
		builder = builder.Set("coverage_radius_km", locationModifyModel.CoverageRadiusKm)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": locationModifyModel.ID}).
		Suffix(`RETURNING id, store_id, name, address, point, hours,
			pickup_enabled, delivery_enabled, coverage_radius_km, created_at, updated_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository update error: %w", err)
	}

	var locationModel LocationDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&locationModel.ID,
		&locationModel.StoreID,
		&locationModel.Name,
		&locationModel.Address,
		&locationModel.Point,
		&locationModel.Hours,
		&locationModel.PickupEnabled,
		&locationModel.DeliveryEnabled,
		&locationModel.CoverageRadiusKm,
		&locationModel.CreatedAt,
		&locationModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, location.ErrLocationNotFound
		}
		return nil, fmt.Errorf("unexpected location repository update error: %w", err)
	}

	return ToDomain(&locationModel)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.StoreLocation, error) {
	query := `
		SELECT id, store_id, name, address, point, hours,
			pickup_enabled, delivery_enabled, coverage_radius_km, created_at, updated_at
		FROM store_locations
		ORDER BY id ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository get all error: %w", err)
	}
	defer rows.Close()

	var locations []entities.StoreLocation
	for rows.Next() {
		var locationModel LocationDB
		err = rows.Scan(
			&locationModel.ID,
			&locationModel.StoreID,
			&locationModel.Name,
			&locationModel.Address,
			&locationModel.Point,
			&locationModel.Hours,
			&locationModel.PickupEnabled,
			&locationModel.DeliveryEnabled,
			&locationModel.CoverageRadiusKm,
			&locationModel.CreatedAt,
			&locationModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected location repository scan error: %w", err)
		}

		locationEntity, err := ToDomain(&locationModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected location repository point error: %w", err)
		}
		locations = append(locations, *locationEntity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected location repository rows error: %w", err)
	}

	return locations, nil
}

func (r *Repository) GetStorePoint(ctx context.Context, storeID int64) (*entities.GeoPoint, error) {
	query := `
		SELECT point
		FROM store_locations
		WHERE store_id = $1
	`

	var pointText string
	err := r.querier.QueryRow(ctx, query, storeID).Scan(&pointText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, location.ErrLocationNotFound
		}
		return nil, fmt.Errorf("unexpected location repository get point error: %w", err)
	}

	point, err := entities.ParsePoint(pointText)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository point error: %w", err)
	}
	return &point, nil
}
