package trip

import (
	"strings"
	"time"

	"maak/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func validateDraft(draft entities.TripDraft, now time.Time) error {
	if strings.TrimSpace(draft.OwnerID) == "" {
		return ErrOwnerMissing
	}
	if !entities.IsValidWilayaCode(draft.Origin) || !entities.IsValidWilayaCode(draft.Destination) {
		return ErrInvalidWilaya
	}
	if draft.Origin == draft.Destination {
		return ErrSameWilaya
	}
	// Same-day departures are fine, yesterday's are not.
	if draft.DepartureAt.Before(now.Truncate(24 * time.Hour)) {
		return ErrDepartureInPast
	}
	return nil
}
