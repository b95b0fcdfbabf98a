//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"maak/internal/entities"
	"maak/pkg/logger"
)

// Backend is the slice of the hosted-backend gateway parcel publishing needs.
type Backend interface {
	InsertParcelRequest(ctx context.Context, draft entities.ParcelDraft, extended bool) (*entities.ParcelRequest, error)
	ListActiveParcelRequests(ctx context.Context) ([]entities.ParcelRequest, error)
	GetParcelRequest(ctx context.Context, id string) (*entities.ParcelRequest, error)
	UpdateParcelStatus(ctx context.Context, actor, id string, status entities.ParcelStatus) (*entities.ParcelRequest, error)
	HasActiveDeal(ctx context.Context, actor string) (bool, error)
	ExpireOldPosts(ctx context.Context) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
