//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"

	"maak/internal/entities"
)

// Store persists guard state between sessions.
type Store interface {
	Save(ctx context.Context, state entities.GuardState) error
	Load(ctx context.Context, userID string) (entities.GuardState, error)
	Delete(ctx context.Context, userID string) error
}
