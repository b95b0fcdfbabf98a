package entities

// MatchScore is the full breakdown of a trip/parcel compatibility check.
// Every sub-signal is kept even when it does not affect ranking, because
// clients render them as compatibility badges.
type MatchScore struct {
	Total int

	OriginMatch      bool
	DestinationMatch bool

	TimeMatch          bool    // departure falls inside the parcel's window
	DateFlexible       bool    // negation of TimeMatch
	DateDistanceDays   float64 // raw, unrounded distance to the window midpoint
	DateProximityScore int     // 0..25

	CategoryMatch   bool
	CapacityScore   int // 0..15, includes the category bonus
	ReputationScore int // 0..10
}

// Match is an ephemeral pairing of one trip and one parcel request. It is
// computed on demand and never persisted.
type Match struct {
	Trip   Trip
	Parcel ParcelRequest
	Score  MatchScore
}
