package parcel

import "errors"

var (
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidWilaya    = errors.New("unknown wilaya code")
	ErrSameWilaya       = errors.New("origin and destination must differ")
	ErrInvalidWindow    = errors.New("date window end precedes its start")
	ErrWindowInPast     = errors.New("date window is entirely in the past")
	ErrInvalidCategory  = errors.New("unknown parcel category")
	ErrNegativeReward   = errors.New("reward amount cannot be negative")
	ErrOwnerMissing     = errors.New("owner id is required")
	ErrActiveDealExists = errors.New("an active deal blocks publishing new posts")
	ErrNotOwner         = errors.New("only the owner may cancel this request")
	ErrNotActive        = errors.New("parcel request is no longer active")
)
