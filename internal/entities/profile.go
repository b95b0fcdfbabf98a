package entities

import (
	"time"
)

// Profile is the public face of a marketplace user.
type Profile struct {
	ID          string
	DisplayName string
	Phone       string
	Email       string
	Wilaya      string
	RatingAvg   *float64 // nil until the first rating lands
	RatingCount int
	CreatedAt   time.Time
}

// ContactCard is the subset of a profile revealed to the counterpart once
// a deal unlocks chat. It must never be built for a locked deal.
type ContactCard struct {
	DisplayName string
	Phone       string
	Email       string
}

func (p *Profile) Contact() ContactCard {
	return ContactCard{
		DisplayName: p.DisplayName,
		Phone:       p.Phone,
		Email:       p.Email,
	}
}
