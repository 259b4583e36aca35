package catalog

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

type Catalog struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Catalog {
	return &Catalog{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Catalog) CreateEntry(ctx context.Context, kind entities.TaxonomyKind, name string) (int64, error) {
	if !entities.IsValidTaxonomyKind(kind) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	if strings.TrimSpace(name) == "" {
		return 0, ErrInvalidName
	}

	id, err := s.repository.Create(ctx, kind, name)
	if err != nil {
		return 0, fmt.Errorf("create taxonomy entry: %w", err)
	}
	return id, nil
}

func (s *Catalog) GetEntries(ctx context.Context, kind entities.TaxonomyKind) ([]entities.TaxonomyEntry, error) {
	if !entities.IsValidTaxonomyKind(kind) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}

	entries, err := s.repository.GetAll(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("get taxonomy entries: %w", err)
	}
	return entries, nil
}

// ToggleActive инвертирует is_active. Повторный вызов возвращает запись
// в исходное состояние, остальные поля не меняются.
func (s *Catalog) ToggleActive(ctx context.Context, kind entities.TaxonomyKind, id int64) (*entities.TaxonomyEntry, error) {
	if !entities.IsValidTaxonomyKind(kind) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	if id <= 0 {
		return nil, ErrInvalidEntryID
	}

	entry, err := s.repository.ToggleActive(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("toggle taxonomy entry: %w", err)
	}
	return entry, nil
}
