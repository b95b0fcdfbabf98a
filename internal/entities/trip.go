package entities

import (
	"time"
)

// Trip is a travel capacity offer published by a traveler. Once a deal
// referencing it has been accepted the row is treated as immutable by
// everyone except the backend expiry sweep.
type Trip struct {
	ID                 string
	OwnerID            string
	Origin             string // wilaya code
	Destination        string // wilaya code
	DepartureAt        time.Time
	CapacityNote       string
	AcceptedCategories []ParcelCategory // nil means "not declared"
	Status             TripStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type TripStatus string

const (
	TripActive    TripStatus = "active"
	TripCancelled TripStatus = "cancelled"
	TripExpired   TripStatus = "expired"
	TripCompleted TripStatus = "completed"
)

func (s TripStatus) String() string {
	return string(s)
}

// TripDraft carries the fields a traveler submits when publishing a trip.
// Optional fields are pointers so the gateway can tell "absent" from "zero".
type TripDraft struct {
	OwnerID            string
	Origin             string
	Destination        string
	DepartureAt        time.Time
	CapacityNote       *string
	AcceptedCategories []ParcelCategory
}

// AcceptsCategory reports whether the trip's declared category set contains c.
// An empty or nil set declares nothing and never matches.
func (t *Trip) AcceptsCategory(c ParcelCategory) bool {
	for _, accepted := range t.AcceptedCategories {
		if accepted == c {
			return true
		}
	}
	return false
}
