package entities

import (
	"time"
)

// ParcelRequest is a delivery request published by a sender. Unlike a trip
// it carries a date window rather than a single departure instant.
type ParcelRequest struct {
	ID              string
	OwnerID         string
	Origin          string // wilaya code
	Destination     string // wilaya code
	WindowStart     time.Time
	WindowEnd       time.Time
	Category        ParcelCategory
	SizeWeight      string // free text, e.g. "small, under 2kg"
	RewardAmount    *float64
	DeclaredContent string
	Notes           string
	DeliveryAddress string
	DeliveryType    DeliveryPointType
	Status          ParcelStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ParcelStatus string

const (
	ParcelActive    ParcelStatus = "active"
	ParcelCancelled ParcelStatus = "cancelled"
	ParcelExpired   ParcelStatus = "expired"
	ParcelMatched   ParcelStatus = "matched"
	ParcelInTransit ParcelStatus = "in_transit"
)

func (s ParcelStatus) String() string {
	return string(s)
}

type ParcelCategory string

const (
	CategoryDocuments   ParcelCategory = "documents"
	CategoryClothes     ParcelCategory = "clothes"
	CategoryElectronics ParcelCategory = "electronics"
	CategoryFood        ParcelCategory = "food"
	CategoryMedicine    ParcelCategory = "medicine"
	CategoryOther       ParcelCategory = "other"
)

func (c ParcelCategory) String() string {
	return string(c)
}

// ParcelCategories is the fixed category enumeration, in display order.
var ParcelCategories = []ParcelCategory{
	CategoryDocuments,
	CategoryClothes,
	CategoryElectronics,
	CategoryFood,
	CategoryMedicine,
	CategoryOther,
}

func IsValidParcelCategory(c ParcelCategory) bool {
	for _, known := range ParcelCategories {
		if known == c {
			return true
		}
	}
	return false
}

type DeliveryPointType string

const (
	DeliveryHome   DeliveryPointType = "home"
	DeliveryOffice DeliveryPointType = "office"
	DeliveryRelay  DeliveryPointType = "relay_point"
)

// ParcelDraft carries the fields a sender submits when publishing a request.
type ParcelDraft struct {
	OwnerID         string
	Origin          string
	Destination     string
	WindowStart     time.Time
	WindowEnd       time.Time
	Category        ParcelCategory
	SizeWeight      *string
	RewardAmount    *float64
	DeclaredContent *string
	Notes           *string
	DeliveryAddress *string
	DeliveryType    *DeliveryPointType
}

// WindowMidpoint is the instant halfway through the request's date window.
// Callers are expected to have validated Start <= End at creation time; an
// inverted window still yields a midpoint, just not a meaningful one.
func (p *ParcelRequest) WindowMidpoint() time.Time {
	return p.WindowStart.Add(p.WindowEnd.Sub(p.WindowStart) / 2)
}
