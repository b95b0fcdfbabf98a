//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_delete_test
package session_delete

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
	Reset(ctx context.Context, userID string) error
}
