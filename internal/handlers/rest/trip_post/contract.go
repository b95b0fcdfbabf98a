//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_post_test
package trip_post

import (
	"context"
	"time"

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
	Create(ctx context.Context, draft entities.TripDraft) (*entities.Trip, error)
}

type tripCreateRequest struct {
	Origin             string    `json:"origin_wilaya"`
	Destination        string    `json:"destination_wilaya"`
	DepartureAt        time.Time `json:"departure_at"`
	CapacityNote       *string   `json:"capacity_note,omitempty"`
	AcceptedCategories []string  `json:"accepted_categories,omitempty"`
}
