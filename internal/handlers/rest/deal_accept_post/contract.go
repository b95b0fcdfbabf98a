//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deal_accept_post_test
package deal_accept_post

import (
	"context"

	"maak/internal/entities"
	"maak/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Accept(ctx context.Context, actor, dealID string) (*entities.Deal, error)
}
