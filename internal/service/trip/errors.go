package trip

import "errors"

var (
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidWilaya    = errors.New("unknown wilaya code")
	ErrSameWilaya       = errors.New("origin and destination must differ")
	ErrDepartureInPast  = errors.New("departure date is in the past")
	ErrOwnerMissing     = errors.New("owner id is required")
	ErrActiveDealExists = errors.New("an active deal blocks publishing new posts")
	ErrNotOwner         = errors.New("only the owner may cancel this trip")
	ErrNotActive        = errors.New("trip is no longer active")
)
