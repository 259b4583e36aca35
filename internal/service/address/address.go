package address

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

type Address struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Address {
	return &Address{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateAddress новый адрес с is_default снимает флаг с остальных
// адресов пользователя в той же транзакции.
func (s *Address) CreateAddress(ctx context.Context, addressModify entities.UserAddressModify) (int64, error) {
	if addressModify.UserID == nil ||
		addressModify.FullAddress == nil {
		return 0, ErrMissingRequiredFields
	}
	if strings.TrimSpace(*addressModify.UserID) == "" {
		return 0, ErrInvalidUserID
	}
	if addressModify.Point != nil && !addressModify.Point.InRange() {
		return 0, ErrInvalidPoint
	}

	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if addressModify.IsDefault != nil && *addressModify.IsDefault {
			if err := s.repository.ClearDefault(ctx, *addressModify.UserID); err != nil {
				return fmt.Errorf("clear default address: %w", err)
			}
		}

		var err error
		id, err = s.repository.Create(ctx, addressModify)
		if err != nil {
			return fmt.Errorf("create address: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Address) GetAddresses(ctx context.Context, userID string) ([]entities.UserAddress, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}

	addresses, err := s.repository.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get addresses: %w", err)
	}
	return addresses, nil
}

func (s *Address) DeleteAddress(ctx context.Context, id int64, userID string) error {
	if id <= 0 {
		return ErrInvalidAddressID
	}
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidUserID
	}

	err := s.repository.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}
