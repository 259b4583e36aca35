//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=page_delete_test
package page_delete

import (
	"context"

	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeletePage(ctx context.Context, id string) error
}
