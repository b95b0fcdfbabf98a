package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maak/internal/entities"
	"maak/internal/gateway/rest/backend"
	"maak/pkg/logger"
)

// Service publishes and manages parcel requests. It mirrors the trip
// service: validation and the publishing guard live here, everything else
// is the backend's call.
type Service struct {
	backend Backend
	log     serviceLogger
	now     func() time.Time
}

func New(b Backend, log serviceLogger) *Service {
	return &Service{
		backend: b,
		log:     log,
		now:     time.Now,
	}
}

// Create validates and publishes a parcel request, downgrading to the
// minimal column set once if the hosted schema rejects an extended column.
func (s *Service) Create(ctx context.Context, draft entities.ParcelDraft) (*entities.ParcelRequest, error) {
	if err := validateDraft(draft, s.now()); err != nil {
		return nil, err
	}

	blocked, err := s.backend.HasActiveDeal(ctx, draft.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("create parcel request, deal guard: %w", err)
	}
	if blocked {
		return nil, ErrActiveDealExists
	}

	created, err := s.backend.InsertParcelRequest(ctx, draft, true)
	if errors.Is(err, backend.ErrUnknownColumn) {
		s.log.Warn("parcel insert downgraded to minimal columns",
			logger.NewField("owner_id", draft.OwnerID))
		created, err = s.backend.InsertParcelRequest(ctx, draft, false)
	}
	if err != nil {
		return nil, fmt.Errorf("create parcel request: %w", err)
	}
	return created, nil
}

// List returns active parcel requests after a best-effort expiry sweep.
func (s *Service) List(ctx context.Context) ([]entities.ParcelRequest, error) {
	if err := s.backend.ExpireOldPosts(ctx); err != nil {
		s.log.Warn("expiry sweep before parcel listing failed",
			logger.NewField("error", err.Error()))
	}

	parcels, err := s.backend.ListActiveParcelRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parcel requests: %w", err)
	}
	return parcels, nil
}

func (s *Service) Get(ctx context.Context, id string) (*entities.ParcelRequest, error) {
	if !isValidID(id) {
		return nil, ErrInvalidID
	}

	parcel, err := s.backend.GetParcelRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel request: %w", err)
	}
	return parcel, nil
}

// Cancel marks an active parcel request cancelled. Owner only.
func (s *Service) Cancel(ctx context.Context, actor, id string) (*entities.ParcelRequest, error) {
	if !isValidID(actor) || !isValidID(id) {
		return nil, ErrInvalidID
	}

	current, err := s.backend.GetParcelRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel parcel request: %w", err)
	}
	if current.OwnerID != actor {
		return nil, ErrNotOwner
	}
	if current.Status != entities.ParcelActive {
		return nil, ErrNotActive
	}

	updated, err := s.backend.UpdateParcelStatus(ctx, actor, id, entities.ParcelCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel parcel request: %w", err)
	}
	return updated, nil
}
