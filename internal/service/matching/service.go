package matching

import (
	"context"
	"fmt"
	"sort"

	"maak/internal/entities"
)

// Service ranks counterpart candidates for one side of the marketplace.
// Matches are computed on demand and never persisted.
type Service struct {
	backend Backend
}

func New(backend Backend) *Service {
	return &Service{
		backend: backend,
	}
}

// RankTripsForParcel scores every active trip against the parcel request,
// drops incompatible candidates and the sender's own trips, and returns
// the rest ordered best-first.
func (s *Service) RankTripsForParcel(ctx context.Context, parcel entities.ParcelRequest) ([]entities.Match, error) {
	trips, err := s.backend.ListActiveTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active trips: %w", err)
	}

	reputations := newReputationCache(s.backend)

	matches := make([]entities.Match, 0, len(trips))
	for _, trip := range trips {
		if trip.OwnerID == parcel.OwnerID {
			continue
		}

		score := Score(trip, parcel, reputations.get(ctx, trip.OwnerID))
		if score.Total == 0 {
			continue
		}

		matches = append(matches, entities.Match{
			Trip:   trip,
			Parcel: parcel,
			Score:  score,
		})
	}

	sortMatches(matches)
	return matches, nil
}

// RankParcelsForTrip is the traveler-side mirror of RankTripsForParcel.
func (s *Service) RankParcelsForTrip(ctx context.Context, trip entities.Trip) ([]entities.Match, error) {
	parcels, err := s.backend.ListActiveParcelRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active parcel requests: %w", err)
	}

	reputations := newReputationCache(s.backend)

	matches := make([]entities.Match, 0, len(parcels))
	for _, parcel := range parcels {
		if parcel.OwnerID == trip.OwnerID {
			continue
		}

		score := Score(trip, parcel, reputations.get(ctx, parcel.OwnerID))
		if score.Total == 0 {
			continue
		}

		matches = append(matches, entities.Match{
			Trip:   trip,
			Parcel: parcel,
			Score:  score,
		})
	}

	sortMatches(matches)
	return matches, nil
}

// sortMatches orders best-first. The sort is stable so equal totals keep
// the backend's listing order; ties are not broken further.
func sortMatches(matches []entities.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score.Total > matches[j].Score.Total
	})
}

// reputationCache deduplicates rating lookups within a single ranking
// pass. A failed lookup degrades to "unknown" instead of failing the
// whole listing: reputation is a bonus signal, not a requirement.
type reputationCache struct {
	backend Backend
	seen    map[string]*float64
}

func newReputationCache(backend Backend) *reputationCache {
	return &reputationCache{
		backend: backend,
		seen:    make(map[string]*float64),
	}
}

func (c *reputationCache) get(ctx context.Context, userID string) *float64 {
	if avg, ok := c.seen[userID]; ok {
		return avg
	}

	avg, err := c.backend.RatingAverage(ctx, userID)
	if err != nil {
		avg = nil
	}
	c.seen[userID] = avg
	return avg
}
