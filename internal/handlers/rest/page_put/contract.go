//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=page_put_test
package page_put

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdatePage(ctx context.Context, pageModify entities.PageContentModify) (*entities.PageContent, error)
}
