//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_test
package trip

import (
	"context"

	"maak/internal/entities"
	"maak/pkg/logger"
)

// Backend is the slice of the hosted-backend gateway trip publishing needs.
type Backend interface {
	InsertTrip(ctx context.Context, draft entities.TripDraft, extended bool) (*entities.Trip, error)
	ListActiveTrips(ctx context.Context) ([]entities.Trip, error)
	GetTrip(ctx context.Context, id string) (*entities.Trip, error)
	UpdateTripStatus(ctx context.Context, actor, id string, status entities.TripStatus) (*entities.Trip, error)
	HasActiveDeal(ctx context.Context, actor string) (bool, error)
	ExpireOldPosts(ctx context.Context) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
