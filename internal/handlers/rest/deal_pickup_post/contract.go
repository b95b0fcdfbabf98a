//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deal_pickup_post_test
package deal_pickup_post

import (
	"context"

	"maak/internal/entities"
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
	ConfirmPickup(ctx context.Context, actor, dealID string, input deal.ConfirmPickupInput) (*entities.Deal, error)
}
