//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deal_events_ws_test
package deal_events_ws

import (
	"context"

	"maak/internal/realtime"
	"maak/internal/service/deal"
	"maak/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Hub interface {
	Subscribe(table, recordID string) *realtime.Subscription
}

type Service interface {
	Get(ctx context.Context, actor, dealID string) (deal.View, error)
}

type dealEvent struct {
	DealID string `json:"deal_id"`
	Action string `json:"action"`
}
