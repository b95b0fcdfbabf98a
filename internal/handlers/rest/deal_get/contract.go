//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deal_get_test
package deal_get

import (
	"context"

	"maak/internal/service/deal"
	"maak/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Get(ctx context.Context, actor, dealID string) (deal.View, error)
}
