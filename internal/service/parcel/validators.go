package parcel

import (
	"strings"
	"time"

	"maak/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func validateDraft(draft entities.ParcelDraft, now time.Time) error {
	if strings.TrimSpace(draft.OwnerID) == "" {
		return ErrOwnerMissing
	}
	if !entities.IsValidWilayaCode(draft.Origin) || !entities.IsValidWilayaCode(draft.Destination) {
		return ErrInvalidWilaya
	}
	if draft.Origin == draft.Destination {
		return ErrSameWilaya
	}
	if draft.WindowEnd.Before(draft.WindowStart) {
		return ErrInvalidWindow
	}
	if draft.WindowEnd.Before(now.Truncate(24 * time.Hour)) {
		return ErrWindowInPast
	}
	if !entities.IsValidParcelCategory(draft.Category) {
		return ErrInvalidCategory
	}
	if draft.RewardAmount != nil && *draft.RewardAmount < 0 {
		return ErrNegativeReward
	}
	return nil
}
