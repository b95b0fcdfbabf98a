//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"

	"maak/internal/entities"
)

type Backend interface {
	ListActiveTrips(ctx context.Context) ([]entities.Trip, error)
	ListActiveParcelRequests(ctx context.Context) ([]entities.ParcelRequest, error)
	RatingAverage(ctx context.Context, userID string) (*float64, error)
}
