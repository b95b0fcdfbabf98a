//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_get_test
package session_get

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
	State(ctx context.Context, userID string) (entities.GuardState, error)
	ConsumePostLoginRedirect(ctx context.Context, userID string) (string, error)
}
