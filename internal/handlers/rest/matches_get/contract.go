//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matches_get_test
package matches_get

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

type MatchingService interface {
	RankTripsForParcel(ctx context.Context, parcel entities.ParcelRequest) ([]entities.Match, error)
	RankParcelsForTrip(ctx context.Context, trip entities.Trip) ([]entities.Match, error)
}

type TripService interface {
	Get(ctx context.Context, id string) (*entities.Trip, error)
}

type ParcelService interface {
	Get(ctx context.Context, id string) (*entities.ParcelRequest, error)
}
