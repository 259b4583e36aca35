//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_test
package address

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, addressModifyEntity entities.UserAddressModify) (int64, error)
	GetAllByUser(ctx context.Context, userID string) ([]entities.UserAddress, error)
	ClearDefault(ctx context.Context, userID string) error
	Delete(ctx context.Context, id int64, userID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
