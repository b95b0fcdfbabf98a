package backend

import (
	"time"

	"maak/internal/entities"
)

// Row types mirror the backend's column names. Required columns are
// pointers so that "missing" is distinguishable from "zero" and can be
// rejected at the boundary instead of leaking zero values inward.

type tripRow struct {
	ID                 *string    `json:"id"`
	OwnerID            *string    `json:"owner_id"`
	Origin             *string    `json:"origin"`
	Destination        *string    `json:"destination"`
	DepartureAt        *time.Time `json:"departure_at"`
	CapacityNote       *string    `json:"capacity_note"`
	AcceptedCategories []string   `json:"accepted_categories"`
	Status             *string    `json:"status"`
	CreatedAt          *time.Time `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

func tripToDomain(row tripRow) (*entities.Trip, error) {
	switch {
	case row.ID == nil:
		return nil, decodeError("trips", "id")
	case row.OwnerID == nil:
		return nil, decodeError("trips", "owner_id")
	case row.Origin == nil:
		return nil, decodeError("trips", "origin")
	case row.Destination == nil:
		return nil, decodeError("trips", "destination")
	case row.DepartureAt == nil:
		return nil, decodeError("trips", "departure_at")
	case row.Status == nil:
		return nil, decodeError("trips", "status")
	}

	trip := &entities.Trip{
		ID:          *row.ID,
		OwnerID:     *row.OwnerID,
		Origin:      *row.Origin,
		Destination: *row.Destination,
		DepartureAt: *row.DepartureAt,
		Status:      entities.TripStatus(*row.Status),
	}
	if row.CapacityNote != nil {
		trip.CapacityNote = *row.CapacityNote
	}
	if len(row.AcceptedCategories) > 0 {
		trip.AcceptedCategories = make([]entities.ParcelCategory, 0, len(row.AcceptedCategories))
		for _, c := range row.AcceptedCategories {
			trip.AcceptedCategories = append(trip.AcceptedCategories, entities.ParcelCategory(c))
		}
	}
	if row.CreatedAt != nil {
		trip.CreatedAt = *row.CreatedAt
	}
	if row.UpdatedAt != nil {
		trip.UpdatedAt = *row.UpdatedAt
	}
	return trip, nil
}

func tripsToDomain(rows []tripRow) ([]entities.Trip, error) {
	trips := make([]entities.Trip, 0, len(rows))
	for _, row := range rows {
		trip, err := tripToDomain(row)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *trip)
	}
	return trips, nil
}

type parcelRow struct {
	ID              *string    `json:"id"`
	OwnerID         *string    `json:"owner_id"`
	Origin          *string    `json:"origin"`
	Destination     *string    `json:"destination"`
	WindowStart     *time.Time `json:"window_start"`
	WindowEnd       *time.Time `json:"window_end"`
	Category        *string    `json:"category"`
	SizeWeight      *string    `json:"size_weight"`
	RewardAmount    *float64   `json:"reward_amount"`
	DeclaredContent *string    `json:"declared_content"`
	Notes           *string    `json:"notes"`
	DeliveryAddress *string    `json:"delivery_address"`
	DeliveryType    *string    `json:"delivery_type"`
	Status          *string    `json:"status"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

func parcelToDomain(row parcelRow) (*entities.ParcelRequest, error) {
	switch {
	case row.ID == nil:
		return nil, decodeError("parcel_requests", "id")
	case row.OwnerID == nil:
		return nil, decodeError("parcel_requests", "owner_id")
	case row.Origin == nil:
		return nil, decodeError("parcel_requests", "origin")
	case row.Destination == nil:
		return nil, decodeError("parcel_requests", "destination")
	case row.WindowStart == nil:
		return nil, decodeError("parcel_requests", "window_start")
	case row.WindowEnd == nil:
		return nil, decodeError("parcel_requests", "window_end")
	case row.Category == nil:
		return nil, decodeError("parcel_requests", "category")
	case row.Status == nil:
		return nil, decodeError("parcel_requests", "status")
	}

	parcel := &entities.ParcelRequest{
		ID:           *row.ID,
		OwnerID:      *row.OwnerID,
		Origin:       *row.Origin,
		Destination:  *row.Destination,
		WindowStart:  *row.WindowStart,
		WindowEnd:    *row.WindowEnd,
		Category:     entities.ParcelCategory(*row.Category),
		RewardAmount: row.RewardAmount,
		Status:       entities.ParcelStatus(*row.Status),
	}
	if row.SizeWeight != nil {
		parcel.SizeWeight = *row.SizeWeight
	}
	if row.DeclaredContent != nil {
		parcel.DeclaredContent = *row.DeclaredContent
	}
	if row.Notes != nil {
		parcel.Notes = *row.Notes
	}
	if row.DeliveryAddress != nil {
		parcel.DeliveryAddress = *row.DeliveryAddress
	}
	if row.DeliveryType != nil {
		parcel.DeliveryType = entities.DeliveryPointType(*row.DeliveryType)
	}
	if row.CreatedAt != nil {
		parcel.CreatedAt = *row.CreatedAt
	}
	if row.UpdatedAt != nil {
		parcel.UpdatedAt = *row.UpdatedAt
	}
	return parcel, nil
}

func parcelsToDomain(rows []parcelRow) ([]entities.ParcelRequest, error) {
	parcels := make([]entities.ParcelRequest, 0, len(rows))
	for _, row := range rows {
		parcel, err := parcelToDomain(row)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, *parcel)
	}
	return parcels, nil
}

type dealRow struct {
	ID                  *string    `json:"id"`
	TripID              *string    `json:"trip_id"`
	ParcelRequestID     *string    `json:"parcel_request_id"`
	OwnerUserID         *string    `json:"owner_user_id"`
	TravelerUserID      *string    `json:"traveler_user_id"`
	Status              *string    `json:"status"`
	SenderAcceptedAt    *time.Time `json:"sender_accepted_at"`
	TravelerAcceptedAt  *time.Time `json:"traveler_accepted_at"`
	PickupBySender      *bool      `json:"pickup_by_sender"`
	PickupByTraveler    *bool      `json:"pickup_by_traveler"`
	PickupAt            *time.Time `json:"pickup_at"`
	DeliveredBySender   *bool      `json:"delivered_by_sender"`
	DeliveredByTraveler *bool      `json:"delivered_by_traveler"`
	DeliveredAt         *time.Time `json:"delivered_at"`
	PickupAddress       *string    `json:"pickup_address"`
	PickupPhotoURL      *string    `json:"pickup_photo_url"`
	PaymentStatus       *string    `json:"payment_status"`
	CreatedAt           *time.Time `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at"`
	ClosedAt            *time.Time `json:"closed_at"`
}

func dealToDomain(row dealRow) (*entities.Deal, error) {
	switch {
	case row.ID == nil:
		return nil, decodeError("deals", "id")
	case row.OwnerUserID == nil:
		return nil, decodeError("deals", "owner_user_id")
	case row.TravelerUserID == nil:
		return nil, decodeError("deals", "traveler_user_id")
	case row.Status == nil:
		return nil, decodeError("deals", "status")
	}

	deal := &entities.Deal{
		ID:                 *row.ID,
		SenderID:           *row.OwnerUserID,
		TravelerID:         *row.TravelerUserID,
		Status:             entities.DealStatus(*row.Status),
		SenderAcceptedAt:   row.SenderAcceptedAt,
		TravelerAcceptedAt: row.TravelerAcceptedAt,
		PickupAt:           row.PickupAt,
		DeliveredAt:        row.DeliveredAt,
		ClosedAt:           row.ClosedAt,
	}
	// trip/parcel references may be null transiently while the backend
	// finishes wiring a proposal together
	if row.TripID != nil {
		deal.TripID = *row.TripID
	}
	if row.ParcelRequestID != nil {
		deal.ParcelRequestID = *row.ParcelRequestID
	}
	if row.PickupBySender != nil {
		deal.PickupBySender = *row.PickupBySender
	}
	if row.PickupByTraveler != nil {
		deal.PickupByTraveler = *row.PickupByTraveler
	}
	if row.DeliveredBySender != nil {
		deal.DeliveredBySender = *row.DeliveredBySender
	}
	if row.DeliveredByTraveler != nil {
		deal.DeliveredByTraveler = *row.DeliveredByTraveler
	}
	if row.PickupAddress != nil {
		deal.PickupAddress = *row.PickupAddress
	}
	if row.PickupPhotoURL != nil {
		deal.PickupPhotoURL = *row.PickupPhotoURL
	}
	if row.PaymentStatus != nil {
		deal.PaymentStatus = *row.PaymentStatus
	}
	if row.CreatedAt != nil {
		deal.CreatedAt = *row.CreatedAt
	}
	if row.UpdatedAt != nil {
		deal.UpdatedAt = *row.UpdatedAt
	}
	return deal, nil
}

type profileRow struct {
	ID          *string    `json:"id"`
	DisplayName *string    `json:"display_name"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	Wilaya      *string    `json:"wilaya"`
	RatingAvg   *float64   `json:"rating_avg"`
	RatingCount *int       `json:"rating_count"`
	CreatedAt   *time.Time `json:"created_at"`
}

func profileToDomain(row profileRow) (*entities.Profile, error) {
	if row.ID == nil {
		return nil, decodeError("profiles", "id")
	}

	profile := &entities.Profile{
		ID:        *row.ID,
		RatingAvg: row.RatingAvg,
	}
	if row.DisplayName != nil {
		profile.DisplayName = *row.DisplayName
	}
	if row.Phone != nil {
		profile.Phone = *row.Phone
	}
	if row.Email != nil {
		profile.Email = *row.Email
	}
	if row.Wilaya != nil {
		profile.Wilaya = *row.Wilaya
	}
	if row.RatingCount != nil {
		profile.RatingCount = *row.RatingCount
	}
	if row.CreatedAt != nil {
		profile.CreatedAt = *row.CreatedAt
	}
	return profile, nil
}

type ratingRow struct {
	Stars *int `json:"stars"`
}

// tripInsertRow builds the write payload. The extended variant includes
// columns newer deployments have; the minimal variant is the pre-declared
// fallback and must stay a strict subset containing every required column.
func tripInsertRow(draft entities.TripDraft, extended bool) map[string]any {
	row := map[string]any{
		"owner_id":     draft.OwnerID,
		"origin":       draft.Origin,
		"destination":  draft.Destination,
		"departure_at": draft.DepartureAt,
		"status":       entities.TripActive.String(),
	}

	if !extended {
		return row
	}

	if draft.CapacityNote != nil {
		row["capacity_note"] = *draft.CapacityNote
	}
	if len(draft.AcceptedCategories) > 0 {
		categories := make([]string, 0, len(draft.AcceptedCategories))
		for _, c := range draft.AcceptedCategories {
			categories = append(categories, c.String())
		}
		row["accepted_categories"] = categories
	}
	return row
}

func parcelInsertRow(draft entities.ParcelDraft, extended bool) map[string]any {
	row := map[string]any{
		"owner_id":     draft.OwnerID,
		"origin":       draft.Origin,
		"destination":  draft.Destination,
		"window_start": draft.WindowStart,
		"window_end":   draft.WindowEnd,
		"category":     draft.Category.String(),
		"status":       entities.ParcelActive.String(),
	}
	if draft.SizeWeight != nil {
		row["size_weight"] = *draft.SizeWeight
	}

	if !extended {
		return row
	}

	if draft.RewardAmount != nil {
		row["reward_amount"] = *draft.RewardAmount
	}
	if draft.DeclaredContent != nil {
		row["declared_content"] = *draft.DeclaredContent
	}
	if draft.Notes != nil {
		row["notes"] = *draft.Notes
	}
	if draft.DeliveryAddress != nil {
		row["delivery_address"] = *draft.DeliveryAddress
	}
	if draft.DeliveryType != nil {
		row["delivery_type"] = string(*draft.DeliveryType)
	}
	return row
}
