package matching

import (
	"math"
	"strings"

	"maak/internal/entities"
)

// Scoring weights. The additive maximum is 25+25+25+15+10 = 100, so the
// final clamp is a ceiling, not a normal path.
const (
	originPoints      = 25
	destinationPoints = 25
	dateProximityMax  = 25
	dateProximityBase = 20
	inWindowBonus     = 5
	capacityMax       = 15
	categoryBonus     = 5
	reputationMax     = 10
	unknownReputation = 6 // neutral prior for an unrated counterpart
	totalMax          = 100
)

// Score computes the compatibility of one trip with one parcel request.
// Pure and deterministic: no I/O, same inputs always give the same
// breakdown. reputationAvg is the counterpart's rating average on a 0..5
// scale; nil or NaN means "unknown traveler".
//
// Callers are responsible for sane date windows. An inverted window
// (end before start) is still scored, the midpoint just stops meaning
// "middle of the window".
func Score(trip entities.Trip, parcel entities.ParcelRequest, reputationAvg *float64) entities.MatchScore {
	score := entities.MatchScore{
		OriginMatch:      trip.Origin != "" && trip.Origin == parcel.Origin,
		DestinationMatch: trip.Destination != "" && trip.Destination == parcel.Destination,
	}

	total := 0
	if score.OriginMatch {
		total += originPoints
	}
	if score.DestinationMatch {
		total += destinationPoints
	}

	score.TimeMatch = !trip.DepartureAt.Before(parcel.WindowStart) &&
		!trip.DepartureAt.After(parcel.WindowEnd)
	score.DateFlexible = !score.TimeMatch

	midpoint := parcel.WindowMidpoint()
	score.DateDistanceDays = math.Abs(trip.DepartureAt.Sub(midpoint).Hours()) / 24

	proximity := dateProximityBase - int(math.Round(score.DateDistanceDays*2))
	if proximity < 0 {
		proximity = 0
	}
	if score.TimeMatch {
		proximity += inWindowBonus
	}
	if proximity > dateProximityMax {
		proximity = dateProximityMax
	}
	score.DateProximityScore = proximity
	total += proximity

	score.CategoryMatch = trip.AcceptsCategory(parcel.Category)
	capacity := sizeCompatibility(trip.CapacityNote, parcel.SizeWeight)
	if score.CategoryMatch {
		capacity += categoryBonus
	}
	if capacity > capacityMax {
		capacity = capacityMax
	}
	score.CapacityScore = capacity
	total += capacity

	score.ReputationScore = reputationScore(reputationAvg)
	total += score.ReputationScore

	if total > totalMax {
		total = totalMax
	}
	score.Total = total

	return score
}

// sizeCompatibility inspects the two free-text fields for size hints.
// The checks are ordered: a roomy capacity note wins over whatever the
// parcel says about itself.
func sizeCompatibility(capacityNote, sizeWeight string) int {
	size := strings.ToLower(strings.TrimSpace(sizeWeight))
	if size == "" {
		return 5
	}

	capacity := strings.ToLower(capacityNote)
	if containsAny(capacity, "large", "suitcase", "15") {
		return 10
	}
	if containsAny(size, "small", "petit") {
		return 8
	}
	if containsAny(size, "medium", "moyen") {
		return 6
	}
	if containsAny(size, "large", "grand", "xlarge") {
		return 3
	}
	return 4
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// reputationScore rescales a 0..5 rating average onto 0..10. Absent or
// NaN input falls back to the neutral prior rather than zero, so unrated
// travelers are not buried below poorly rated ones.
func reputationScore(reputationAvg *float64) int {
	if reputationAvg == nil || math.IsNaN(*reputationAvg) {
		return unknownReputation
	}

	avg := *reputationAvg
	if avg < 0 {
		avg = 0
	}
	if avg > 5 {
		avg = 5
	}
	return int(math.Round(avg * 2))
}
