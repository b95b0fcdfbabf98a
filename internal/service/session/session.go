package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"maak/internal/entities"
	"maak/internal/repository/guardstate"
)

var ErrInvalidID = errors.New("invalid user id")

// Service owns the per-user guard state. Every flag has a named mutator;
// there is deliberately no generic "set key" operation, so new flags force
// a field on the struct and a method here.
type Service struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// State loads the user's guard state. A user the store has never seen
// gets a zero-valued state, not an error.
func (s *Service) State(ctx context.Context, userID string) (entities.GuardState, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.GuardState{}, ErrInvalidID
	}

	state, err := s.store.Load(ctx, userID)
	if errors.Is(err, guardstate.ErrNotFound) {
		return entities.GuardState{UserID: userID}, nil
	}
	if err != nil {
		return entities.GuardState{}, fmt.Errorf("guard state: %w", err)
	}
	return state, nil
}

func (s *Service) MarkOnboardingDone(ctx context.Context, userID string) error {
	return s.mutate(ctx, userID, func(state *entities.GuardState) {
		state.OnboardingDone = true
	})
}

func (s *Service) SetPendingVerificationEmail(ctx context.Context, userID, email string) error {
	return s.mutate(ctx, userID, func(state *entities.GuardState) {
		state.PendingVerificationEmail = email
	})
}

func (s *Service) ClearPendingVerification(ctx context.Context, userID string) error {
	return s.mutate(ctx, userID, func(state *entities.GuardState) {
		state.PendingVerificationEmail = ""
	})
}

func (s *Service) SetPostLoginRedirect(ctx context.Context, userID, route string) error {
	return s.mutate(ctx, userID, func(state *entities.GuardState) {
		state.PostLoginRedirect = route
	})
}

// ConsumePostLoginRedirect returns the stored redirect and clears it in
// one step, so a route never fires twice.
func (s *Service) ConsumePostLoginRedirect(ctx context.Context, userID string) (string, error) {
	state, err := s.State(ctx, userID)
	if err != nil {
		return "", err
	}
	route := state.PostLoginRedirect
	if route == "" {
		return "", nil
	}

	if err := s.mutate(ctx, userID, func(state *entities.GuardState) {
		state.PostLoginRedirect = ""
	}); err != nil {
		return "", err
	}
	return route, nil
}

// Reset drops all flags for the user, e.g. on sign-out.
func (s *Service) Reset(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidID
	}

	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("reset guard state: %w", err)
	}
	return nil
}

func (s *Service) mutate(ctx context.Context, userID string, apply func(*entities.GuardState)) error {
	state, err := s.State(ctx, userID)
	if err != nil {
		return err
	}

	apply(&state)
	state.UserID = userID
	state.UpdatedAt = s.now()

	if err := s.store.Save(ctx, state); err != nil {
		return fmt.Errorf("save guard state: %w", err)
	}
	return nil
}
