//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deal_code_get_test
package deal_code_get

import (
	"context"

	"maak/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeliveryCode(ctx context.Context, actor, dealID string) (string, error)
}

type deliveryCodeResponse struct {
	Code string `json:"code"`
}
