//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deal_test
package deal

import (
	"context"
	"io"

	"maak/internal/entities"
)

// Backend is the slice of the hosted-backend gateway the lifecycle
// controller needs. All transition authority lives behind it; the
// controller only refuses actions that can never succeed and reconciles
// by re-reading after every mutation.
type Backend interface {
	GetDeal(ctx context.Context, actor, id string) (*entities.Deal, error)
	GetTrip(ctx context.Context, id string) (*entities.Trip, error)
	GetParcelRequest(ctx context.Context, id string) (*entities.ParcelRequest, error)
	GetProfile(ctx context.Context, userID string) (*entities.Profile, error)
	FindDealByPair(ctx context.Context, actor, tripID, parcelRequestID string) (*entities.Deal, error)

	ProposeDeal(ctx context.Context, actor, parcelRequestID, tripID string) (string, error)
	AcceptDeal(ctx context.Context, actor, dealID string) error
	ConfirmPickup(ctx context.Context, actor, dealID string, contentOK, sizeOK bool, photoURL string) (bool, error)
	VerifyDeliveryCode(ctx context.Context, actor, dealID, code string) (entities.CodeVerification, error)
	DeliveryCode(ctx context.Context, actor, dealID string) (string, error)
}

type Storage interface {
	UploadPickupProof(ctx context.Context, dealID, contentType string, photo io.Reader) (string, error)
}
