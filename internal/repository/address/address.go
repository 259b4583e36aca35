package address

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/address"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type addressDB struct {
	ID          int64
	UserID      string
	Label       *string
	FullAddress string
	Point       *string
	IsDefault   bool
	CreatedAt   time.Time
}

func (r *Repository) Create(ctx context.Context, addressModifyEntity entities.UserAddressModify) (int64, error) {
	var pointText *string
	if addressModifyEntity.Point != nil {
		text := addressModifyEntity.Point.String()
		pointText = &text
	}

	query := `
		INSERT INTO user_addresses (user_id, label, full_address, point, is_default)
		VALUES ($1, $2, $3, $4, COALESCE($5, FALSE))
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		addressModifyEntity.UserID,
		addressModifyEntity.Label,
		addressModifyEntity.FullAddress,
		pointText,
		addressModifyEntity.IsDefault,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected address repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetAllByUser(ctx context.Context, userID string) ([]entities.UserAddress, error) {
	query := `
		SELECT id, user_id, label, full_address, point, is_default, created_at
		FROM user_addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository get all error: %w", err)
	}
	defer rows.Close()

	var addresses []entities.UserAddress
	for rows.Next() {
		var addressModel addressDB
		err = rows.Scan(
			&addressModel.ID,
			&addressModel.UserID,
			&addressModel.Label,
			&addressModel.FullAddress,
			&addressModel.Point,
			&addressModel.IsDefault,
			&addressModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected address repository scan error: %w", err)
		}

		addressEntity, err := toDomain(&addressModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected address repository point error: %w", err)
		}
		addresses = append(addresses, addressEntity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected address repository rows error: %w", err)
	}

	return addresses, nil
}

func (r *Repository) ClearDefault(ctx context.Context, userID string) error {
	query := `
		UPDATE user_addresses
		SET is_default = FALSE
		WHERE user_id = $1 AND is_default = TRUE
	`

	_, err := r.querier.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("unexpected address repository clear default error: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64, userID string) error {
	query := `
		DELETE FROM user_addresses WHERE id = $1 AND user_id = $2
	`

	result, err := r.querier.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("unexpected address repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return address.ErrAddressNotFound
	}

	return nil
}

func toDomain(a *addressDB) (entities.UserAddress, error) {
	addressEntity := entities.UserAddress{
		ID:          a.ID,
		UserID:      a.UserID,
		FullAddress: a.FullAddress,
		IsDefault:   a.IsDefault,
		CreatedAt:   a.CreatedAt,
	}

	if a.Label != nil {
		addressEntity.Label = *a.Label
	}
	if a.Point != nil {
		point, err := entities.ParsePoint(*a.Point)
		if err != nil {
			return entities.UserAddress{}, err
		}
		addressEntity.Point = &point
	}

	return addressEntity, nil
}
