package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/driver"
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

func (r *Repository) Create(ctx context.Context, driverModifyEntity entities.DriverModify) (int64, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)
	query := `INSERT INTO drivers (name, phone, vehicle_type, is_available, location)
		VALUES ($1, $2, $3, COALESCE($4, TRUE), $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		driverModifyModel.Name,
		driverModifyModel.Phone,
		driverModifyModel.VehicleType,
		driverModifyModel.IsAvailable,
		driverModifyModel.Location,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, driver.ErrConflict
		}
		return 0, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	// опциональные поля
	if driverModifyModel.Name != nil {
		builder = builder.Set("name", driverModifyModel.Name)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}
	if driverModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", driverModifyModel.VehicleType)
	}
	if driverModifyModel.IsAvailable != nil {
		builder = builder.Set("is_available", driverModifyModel.IsAvailable)
	}
	if driverModifyModel.Location != nil {
		builder = builder.Set("location", driverModifyModel.Location)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Suffix("RETURNING id, name, phone, vehicle_type, is_available, location, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	var driverModel DriverDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&driverModel.ID,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.VehicleType,
			&driverModel.IsAvailable,
			&driverModel.Location,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrConflict
		}

		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(&driverModel)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT id, name, phone, vehicle_type, is_available, location, created_at, updated_at
		FROM drivers
		WHERE id = $1`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&driverModel.ID,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.VehicleType,
			&driverModel.IsAvailable,
			&driverModel.Location,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository get error: %w", err)
	}

	return ToDomain(&driverModel)
}

func (r *Repository) GetAll(ctx context.Context, onlyAvailable bool) ([]entities.Driver, error) {
	builder := qb.
		Select("id", "name", "phone", "vehicle_type", "is_available", "location", "created_at", "updated_at").
		From("drivers").
		OrderBy("id ASC")

	if onlyAvailable {
		builder = builder.Where(sq.Eq{"is_available": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository get all error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository get all error: %w", err)
	}
	defer rows.Close()

	var drivers []entities.Driver
	for rows.Next() {
		var driverModel DriverDB
		err = rows.Scan(
			&driverModel.ID,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.VehicleType,
			&driverModel.IsAvailable,
			&driverModel.Location,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository scan error: %w", err)
		}

		driverEntity, err := ToDomain(&driverModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository location error: %w", err)
		}
		drivers = append(drivers, *driverEntity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository rows error: %w", err)
	}

	return drivers, nil
}
