package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maak/internal/entities"
	"maak/internal/gateway/rest/backend"
	"maak/pkg/logger"
)

// Service publishes and manages trip posts. Writes go through the backend
// gateway; the only local smarts are input validation, the one-active-deal
// publishing guard and a one-shot downgrade to the minimal column set when
// the hosted schema turns out to lag behind the client.
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

// Create validates and publishes a trip. The insert is first attempted with
// the full column set; if the backend reports an unknown column the extended
// fields are dropped and the insert is retried exactly once.
func (s *Service) Create(ctx context.Context, draft entities.TripDraft) (*entities.Trip, error) {
	if err := validateDraft(draft, s.now()); err != nil {
		return nil, err
	}

	blocked, err := s.backend.HasActiveDeal(ctx, draft.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("create trip, deal guard: %w", err)
	}
	if blocked {
		return nil, ErrActiveDealExists
	}

	created, err := s.backend.InsertTrip(ctx, draft, true)
	if errors.Is(err, backend.ErrUnknownColumn) {
		s.log.Warn("trip insert downgraded to minimal columns",
			logger.NewField("owner_id", draft.OwnerID))
		created, err = s.backend.InsertTrip(ctx, draft, false)
	}
	if err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}
	return created, nil
}

// List returns all active trips. A backend expiry sweep runs first so stale
// rows drop out of the listing; sweep failures are advisory and never block
// the read.
func (s *Service) List(ctx context.Context) ([]entities.Trip, error) {
	if err := s.backend.ExpireOldPosts(ctx); err != nil {
		s.log.Warn("expiry sweep before trip listing failed",
			logger.NewField("error", err.Error()))
	}

	trips, err := s.backend.ListActiveTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

func (s *Service) Get(ctx context.Context, id string) (*entities.Trip, error) {
	if !isValidID(id) {
		return nil, ErrInvalidID
	}

	trip, err := s.backend.GetTrip(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return trip, nil
}

// Cancel marks an active trip cancelled. Owner only; a trip that already
// left the active status stays untouched.
func (s *Service) Cancel(ctx context.Context, actor, id string) (*entities.Trip, error) {
	if !isValidID(actor) || !isValidID(id) {
		return nil, ErrInvalidID
	}

	current, err := s.backend.GetTrip(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel trip: %w", err)
	}
	if current.OwnerID != actor {
		return nil, ErrNotOwner
	}
	if current.Status != entities.TripActive {
		return nil, ErrNotActive
	}

	updated, err := s.backend.UpdateTripStatus(ctx, actor, id, entities.TripCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel trip: %w", err)
	}
	return updated, nil
}
