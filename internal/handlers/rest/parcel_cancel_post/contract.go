//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_cancel_post_test
package parcel_cancel_post

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
	Cancel(ctx context.Context, actor, id string) (*entities.ParcelRequest, error)
}
