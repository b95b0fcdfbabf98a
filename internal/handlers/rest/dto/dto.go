// Package dto holds the wire representations shared by the REST handlers
// and their converters from domain entities.
package dto

import (
	"time"

	"maak/internal/entities"
	"maak/internal/service/deal"
)

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Trip struct {
	ID                 string    `json:"id"`
	OwnerID            string    `json:"owner_id"`
	Origin             string    `json:"origin_wilaya"`
	Destination        string    `json:"destination_wilaya"`
	DepartureAt        time.Time `json:"departure_at"`
	CapacityNote       string    `json:"capacity_note,omitempty"`
	AcceptedCategories []string  `json:"accepted_categories,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type ParcelRequest struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Origin          string    `json:"origin_wilaya"`
	Destination     string    `json:"destination_wilaya"`
	WindowStart     time.Time `json:"window_start"`
	WindowEnd       time.Time `json:"window_end"`
	Category        string    `json:"category"`
	SizeWeight      string    `json:"size_weight,omitempty"`
	RewardAmount    *float64  `json:"reward_amount,omitempty"`
	DeclaredContent string    `json:"declared_content,omitempty"`
	DeliveryAddress string    `json:"delivery_address,omitempty"`
	DeliveryType    string    `json:"delivery_type,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type MatchScore struct {
	Total              int     `json:"total"`
	OriginMatch        bool    `json:"origin_match"`
	DestinationMatch   bool    `json:"destination_match"`
	TimeMatch          bool    `json:"time_match"`
	DateFlexible       bool    `json:"date_flexible"`
	DateDistanceDays   float64 `json:"date_distance_days"`
	DateProximityScore int     `json:"date_proximity_score"`
	CategoryMatch      bool    `json:"category_match"`
	CapacityScore      int     `json:"capacity_score"`
	ReputationScore    int     `json:"reputation_score"`
}

type TripMatch struct {
	Trip  Trip       `json:"trip"`
	Score MatchScore `json:"score"`
}

type ParcelMatch struct {
	Parcel ParcelRequest `json:"parcel_request"`
	Score  MatchScore    `json:"score"`
}

type Deal struct {
	ID              string     `json:"id"`
	TripID          string     `json:"trip_id"`
	ParcelRequestID string     `json:"parcel_request_id"`
	SenderID        string     `json:"sender_id"`
	TravelerID      string     `json:"traveler_id"`
	Status          string     `json:"status"`
	PickupAddress   string     `json:"pickup_address,omitempty"`
	PickupPhotoURL  string     `json:"pickup_photo_url,omitempty"`
	PaymentStatus   string     `json:"payment_status,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
}

type ContactCard struct {
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

type DealView struct {
	Deal         Deal         `json:"deal"`
	ChatUnlocked bool         `json:"chat_unlocked"`
	Counterpart  *ContactCard `json:"counterpart,omitempty"`

	CanAccept        bool `json:"can_accept"`
	CanConfirmPickup bool `json:"can_confirm_pickup"`
	CanVerifyCode    bool `json:"can_verify_code"`
	CanMarkDelivered bool `json:"can_mark_delivered"`
	CanShowCode      bool `json:"can_show_code"`
}

func FromTrip(t *entities.Trip) Trip {
	categories := make([]string, 0, len(t.AcceptedCategories))
	for _, c := range t.AcceptedCategories {
		categories = append(categories, c.String())
	}
	return Trip{
		ID:                 t.ID,
		OwnerID:            t.OwnerID,
		Origin:             t.Origin,
		Destination:        t.Destination,
		DepartureAt:        t.DepartureAt,
		CapacityNote:       t.CapacityNote,
		AcceptedCategories: categories,
		Status:             t.Status.String(),
		CreatedAt:          t.CreatedAt,
	}
}

func FromParcelRequest(p *entities.ParcelRequest) ParcelRequest {
	return ParcelRequest{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Origin:          p.Origin,
		Destination:     p.Destination,
		WindowStart:     p.WindowStart,
		WindowEnd:       p.WindowEnd,
		Category:        p.Category.String(),
		SizeWeight:      p.SizeWeight,
		RewardAmount:    p.RewardAmount,
		DeclaredContent: p.DeclaredContent,
		DeliveryAddress: p.DeliveryAddress,
		DeliveryType:    string(p.DeliveryType),
		Status:          p.Status.String(),
		CreatedAt:       p.CreatedAt,
	}
}

func FromMatchScore(s entities.MatchScore) MatchScore {
	return MatchScore{
		Total:              s.Total,
		OriginMatch:        s.OriginMatch,
		DestinationMatch:   s.DestinationMatch,
		TimeMatch:          s.TimeMatch,
		DateFlexible:       s.DateFlexible,
		DateDistanceDays:   s.DateDistanceDays,
		DateProximityScore: s.DateProximityScore,
		CategoryMatch:      s.CategoryMatch,
		CapacityScore:      s.CapacityScore,
		ReputationScore:    s.ReputationScore,
	}
}

func FromTripMatches(matches []entities.Match) []TripMatch {
	out := make([]TripMatch, 0, len(matches))
	for i := range matches {
		out = append(out, TripMatch{
			Trip:  FromTrip(&matches[i].Trip),
			Score: FromMatchScore(matches[i].Score),
		})
	}
	return out
}

func FromParcelMatches(matches []entities.Match) []ParcelMatch {
	out := make([]ParcelMatch, 0, len(matches))
	for i := range matches {
		out = append(out, ParcelMatch{
			Parcel: FromParcelRequest(&matches[i].Parcel),
			Score:  FromMatchScore(matches[i].Score),
		})
	}
	return out
}

func FromDeal(d *entities.Deal) Deal {
	return Deal{
		ID:              d.ID,
		TripID:          d.TripID,
		ParcelRequestID: d.ParcelRequestID,
		SenderID:        d.SenderID,
		TravelerID:      d.TravelerID,
		Status:          string(d.Status),
		PickupAddress:   d.PickupAddress,
		PickupPhotoURL:  d.PickupPhotoURL,
		PaymentStatus:   d.PaymentStatus,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		ClosedAt:        d.ClosedAt,
	}
}

func FromDealView(view deal.View) DealView {
	out := DealView{
		Deal:             FromDeal(view.Deal),
		ChatUnlocked:     view.ChatUnlocked,
		CanAccept:        view.CanAccept,
		CanConfirmPickup: view.CanConfirmPickup,
		CanVerifyCode:    view.CanVerifyCode,
		CanMarkDelivered: view.CanMarkDelivered,
		CanShowCode:      view.CanShowCode,
	}
	if view.Counterpart != nil {
		out.Counterpart = &ContactCard{
			DisplayName: view.Counterpart.DisplayName,
			Phone:       view.Counterpart.Phone,
			Email:       view.Counterpart.Email,
		}
	}
	return out
}
