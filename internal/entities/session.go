package entities

import "time"

// GuardState is the small set of per-user navigation flags that outlive a
// client session. Each field has a name and a type; nothing else may be
// stored in it.
type GuardState struct {
	UserID                   string    `json:"user_id"`
	OnboardingDone           bool      `json:"onboarding_done"`
	PendingVerificationEmail string    `json:"pending_verification_email,omitempty"`
	PostLoginRedirect        string    `json:"post_login_redirect,omitempty"`
	UpdatedAt                time.Time `json:"updated_at"`
}
