//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deal_code_post_test
package deal_code_post

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
	VerifyDeliveryCode(ctx context.Context, actor, dealID, code string) (entities.CodeVerification, *entities.Deal, error)
}

type verifyCodeRequest struct {
	Code string `json:"code"`
}
