//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deal_post_test
package deal_post

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
	Propose(ctx context.Context, actor, tripID, parcelRequestID string) (deal.ProposeResult, error)
}

type dealCreateRequest struct {
	TripID          string `json:"trip_id"`
	ParcelRequestID string `json:"parcel_request_id"`
}
