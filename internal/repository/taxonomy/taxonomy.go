package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/catalog"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type entryDB struct {
	ID        int64
	Kind      string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Repository) Create(ctx context.Context, kind entities.TaxonomyKind, name string) (int64, error) {
	query := `
		INSERT INTO taxonomy (kind, name)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(ctx, query, kind.String(), name).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, catalog.ErrConflict
		}
		return 0, fmt.Errorf("unexpected taxonomy repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetAll(ctx context.Context, kind entities.TaxonomyKind) ([]entities.TaxonomyEntry, error) {
	query := `
		SELECT id, kind, name, is_active, created_at, updated_at
		FROM taxonomy
		WHERE kind = $1
		ORDER BY name ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, kind.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected taxonomy repository get all error: %w", err)
	}
	defer rows.Close()

	var entries []entities.TaxonomyEntry
	for rows.Next() {
		var entry entryDB
		err = rows.Scan(
			&entry.ID,
			&entry.Kind,
			&entry.Name,
			&entry.IsActive,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected taxonomy repository scan error: %w", err)
		}
		entries = append(entries, toDomain(&entry))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected taxonomy repository rows error: %w", err)
	}

	return entries, nil
}

// ToggleActive инверсия делается прямо в SQL, двойной вызов возвращает
// запись в исходное состояние.
func (r *Repository) ToggleActive(ctx context.Context, kind entities.TaxonomyKind, id int64) (*entities.TaxonomyEntry, error) {
	query := `
		UPDATE taxonomy
		SET is_active = NOT is_active,
			updated_at = NOW()
		WHERE kind = $1 AND id = $2
		RETURNING id, kind, name, is_active, created_at, updated_at
	`

	var entry entryDB
	err := r.querier.QueryRow(ctx, query, kind.String(), id).Scan(
		&entry.ID,
		&entry.Kind,
		&entry.Name,
		&entry.IsActive,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrEntryNotFound
		}
		return nil, fmt.Errorf("unexpected taxonomy repository toggle error: %w", err)
	}

	entryEntity := toDomain(&entry)
	return &entryEntity, nil
}

func toDomain(e *entryDB) entities.TaxonomyEntry {
	return entities.TaxonomyEntry{
		ID:        e.ID,
		Kind:      entities.TaxonomyKind(e.Kind),
		Name:      e.Name,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
