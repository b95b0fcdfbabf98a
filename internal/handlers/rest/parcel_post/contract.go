//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_post_test
package parcel_post

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
	Create(ctx context.Context, draft entities.ParcelDraft) (*entities.ParcelRequest, error)
}

type parcelCreateRequest struct {
	Origin          string    `json:"origin_wilaya"`
	Destination     string    `json:"destination_wilaya"`
	WindowStart     time.Time `json:"window_start"`
	WindowEnd       time.Time `json:"window_end"`
	Category        string    `json:"category"`
	SizeWeight      *string   `json:"size_weight,omitempty"`
	RewardAmount    *float64  `json:"reward_amount,omitempty"`
	DeclaredContent *string   `json:"declared_content,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	DeliveryAddress *string   `json:"delivery_address,omitempty"`
	DeliveryType    *string   `json:"delivery_type,omitempty"`
}
