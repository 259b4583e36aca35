//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=content_test
package content

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, pageModifyEntity entities.PageContentModify) (*entities.PageContent, error)
	GetAll(ctx context.Context) ([]entities.PageContent, error)
	GetByID(ctx context.Context, id string) (*entities.PageContent, error)
	Update(ctx context.Context, pageModifyEntity entities.PageContentModify) (*entities.PageContent, error)
	Delete(ctx context.Context, id string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
