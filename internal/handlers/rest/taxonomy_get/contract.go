//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=taxonomy_get_test
package taxonomy_get

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
	GetEntries(ctx context.Context, kind entities.TaxonomyKind) ([]entities.TaxonomyEntry, error)
}
