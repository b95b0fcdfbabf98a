//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_patch_test
package session_patch

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

type Service interface {
	State(ctx context.Context, userID string) (entities.GuardState, error)
	MarkOnboardingDone(ctx context.Context, userID string) error
	SetPendingVerificationEmail(ctx context.Context, userID, email string) error
	ClearPendingVerification(ctx context.Context, userID string) error
	SetPostLoginRedirect(ctx context.Context, userID, route string) error
}

// Each field maps to one named mutator; absent fields are untouched. An
// empty pending_verification_email clears the flag.
type sessionPatchRequest struct {
	OnboardingDone           *bool   `json:"onboarding_done,omitempty"`
	PendingVerificationEmail *string `json:"pending_verification_email,omitempty"`
	PostLoginRedirect        *string `json:"post_login_redirect,omitempty"`
}
