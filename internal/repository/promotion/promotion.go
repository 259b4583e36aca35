package promotion

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/promotion"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, promotionEntity *entities.Promotion) (int64, error) {
	promotionDB, err := FromDomain(promotionEntity)
	if err != nil {
		return 0, fmt.Errorf("unexpected promotion repository convert error: %w", err)
	}

	query := `
		INSERT INTO promotions (store_id, name, type, active, payload)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err = r.querier.QueryRow(
		ctx,
		query,
		promotionDB.StoreID,
		promotionDB.Name,
		promotionDB.Type,
		promotionDB.Active,
		promotionDB.Payload,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, promotion.ErrConflict
		}
		return 0, fmt.Errorf("unexpected promotion repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Promotion, error) {
	query := `
		SELECT id, store_id, name, type, active, payload, created_at, updated_at
		FROM promotions
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected promotion repository get all error: %w", err)
	}
	defer rows.Close()

	var promotions []entities.Promotion
	for rows.Next() {
		var promotionDB PromotionDB
		err = rows.Scan(
			&promotionDB.ID,
			&promotionDB.StoreID,
			&promotionDB.Name,
			&promotionDB.Type,
			&promotionDB.Active,
			&promotionDB.Payload,
			&promotionDB.CreatedAt,
			&promotionDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected promotion repository scan error: %w", err)
		}

		promotionEntity, err := ToDomain(&promotionDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected promotion repository payload error: %w", err)
		}
		promotions = append(promotions, *promotionEntity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected promotion repository rows error: %w", err)
	}

	return promotions, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM promotions WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected promotion repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return promotion.ErrPromotionNotFound
	}

	return nil
}

// DeactivateExpiredFlashSales jsonb-поле ends_at сравнивается прямо в SQL,
// декодировать payload для этого не нужно.
func (r *Repository) DeactivateExpiredFlashSales(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE promotions
		SET active = FALSE,
			updated_at = NOW()
		WHERE type = 'flash_sale'
			AND active = TRUE
			AND (payload->>'ends_at')::timestamptz < $1
	`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected promotion repository deactivate error: %w", err)
	}

	return result.RowsAffected(), nil
}
