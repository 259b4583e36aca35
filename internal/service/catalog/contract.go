//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, kind entities.TaxonomyKind, name string) (int64, error)
	GetAll(ctx context.Context, kind entities.TaxonomyKind) ([]entities.TaxonomyEntry, error)
	ToggleActive(ctx context.Context, kind entities.TaxonomyKind, id int64) (*entities.TaxonomyEntry, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
