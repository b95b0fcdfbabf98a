package guardstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"maak/internal/entities"
)

const (
	keyPrefix = "maak:guard:"

	// Stale flags are worthless after a month of inactivity.
	stateTTL = 30 * 24 * time.Hour
)

var ErrNotFound = errors.New("guard state not found")

// Repository persists per-user guard state in Redis, one JSON value per
// user under a prefixed key.
type Repository struct {
	client *redis.Client
}

func New(client *redis.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) Save(ctx context.Context, state entities.GuardState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal guard state: %w", err)
	}

	if err := r.client.Set(ctx, key(state.UserID), payload, stateTTL).Err(); err != nil {
		return fmt.Errorf("save guard state: %w", err)
	}
	return nil
}

func (r *Repository) Load(ctx context.Context, userID string) (entities.GuardState, error) {
	raw, err := r.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.GuardState{}, ErrNotFound
	}
	if err != nil {
		return entities.GuardState{}, fmt.Errorf("load guard state: %w", err)
	}

	var state entities.GuardState
	if err := json.Unmarshal(raw, &state); err != nil {
		return entities.GuardState{}, fmt.Errorf("unmarshal guard state: %w", err)
	}
	return state, nil
}

func (r *Repository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("delete guard state: %w", err)
	}
	return nil
}

func key(userID string) string {
	return keyPrefix + userID
}
