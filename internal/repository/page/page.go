package page

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/content"
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

func (r *Repository) Create(ctx context.Context, pageModifyEntity entities.PageContentModify) (*entities.PageContent, error) {
	pageModifyModel := FromDomainModify(&pageModifyEntity)

	query := `
		INSERT INTO page_contents (id, slug, category, title, body, published)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, FALSE))
		RETURNING id, slug, category, title, body, published, created_at, updated_at
	`

	var pageModel PageDB
	err := r.querier.QueryRow(
		ctx,
		query,
		pageModifyModel.ID,
		pageModifyModel.Slug,
		pageModifyModel.Category,
		pageModifyModel.Title,
		pageModifyModel.Body,
		pageModifyModel.Published,
	).Scan(
		&pageModel.ID,
		&pageModel.Slug,
		&pageModel.Category,
		&pageModel.Title,
		&pageModel.Body,
		&pageModel.Published,
		&pageModel.CreatedAt,
		&pageModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, content.ErrConflict
		}
		return nil, fmt.Errorf("unexpected page repository create error: %w", err)
	}

	return ToDomain(&pageModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.PageContent, error) {
	query := `
		SELECT id, slug, category, title, body, published, created_at, updated_at
		FROM page_contents
		ORDER BY created_at DESC, id ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected page repository get all error: %w", err)
	}
	defer rows.Close()

	var pages []entities.PageContent
	for rows.Next() {
		var pageModel PageDB
		err = rows.Scan(
			&pageModel.ID,
			&pageModel.Slug,
			&pageModel.Category,
			&pageModel.Title,
			&pageModel.Body,
			&pageModel.Published,
			&pageModel.CreatedAt,
			&pageModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected page repository scan error: %w", err)
		}
		pages = append(pages, *ToDomain(&pageModel))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected page repository rows error: %w", err)
	}

	return pages, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.PageContent, error) {
	query := `
		SELECT id, slug, category, title, body, published, created_at, updated_at
		FROM page_contents
		WHERE id = $1
	`

	var pageModel PageDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&pageModel.ID,
		&pageModel.Slug,
		&pageModel.Category,
		&pageModel.Title,
		&pageModel.Body,
		&pageModel.Published,
		&pageModel.CreatedAt,
		&pageModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrPageNotFound
		}
		return nil, fmt.Errorf("unexpected page repository get error: %w", err)
	}

	return ToDomain(&pageModel), nil
}

func (r *Repository) Update(ctx context.Context, pageModifyEntity entities.PageContentModify) (*entities.PageContent, error) {
	pageModifyModel := FromDomainModify(&pageModifyEntity)

	builder := qb.
		Update("page_contents")

	// опциональные поля
	if pageModifyModel.Slug != nil {
		builder = builder.Set("slug", pageModifyModel.Slug)
	}
	if pageModifyModel.Category != nil {
		builder = builder.Set("category", pageModifyModel.Category)
	}
	if pageModifyModel.Title != nil {
		builder = builder.Set("title", pageModifyModel.Title)
	}
	if pageModifyModel.Body != nil {
		builder = builder.Set("body", pageModifyModel.Body)
	}
	if pageModifyModel.Published != nil {
		builder = builder.Set("published", pageModifyModel.Published)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": pageModifyModel.ID}).
		Suffix("RETURNING id, slug, category, title, body, published, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected page repository update error: %w", err)
	}

	var pageModel PageDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&pageModel.ID,
		&pageModel.Slug,
		&pageModel.Category,
		&pageModel.Title,
		&pageModel.Body,
		&pageModel.Published,
		&pageModel.CreatedAt,
		&pageModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrPageNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, content.ErrConflict
		}
		return nil, fmt.Errorf("unexpected page repository update error: %w", err)
	}

	return ToDomain(&pageModel), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM page_contents WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected page repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return content.ErrPageNotFound
	}

	return nil
}
