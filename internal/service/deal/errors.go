package deal

import "errors"

var (
	ErrInvalidID = errors.New("invalid id")

	ErrNotParty = errors.New("actor is not a party to this deal")
	ErrSelfDeal = errors.New("cannot deal with your own post")

	ErrPostNotActive = errors.New("post is no longer active")
	ErrNotAcceptable = errors.New("deal can no longer be accepted")

	ErrTravelerOnly = errors.New("only the traveler may perform this action")
	ErrSenderOnly   = errors.New("only the sender may view the delivery code")

	ErrPickupNotAllowed     = errors.New("pickup cannot be confirmed in this status")
	ErrConfirmationsMissing = errors.New("both pickup confirmations are required")
	ErrPhotoMissing         = errors.New("a pickup proof photo is required")
	ErrPickupRejected       = errors.New("backend refused the pickup confirmation")

	ErrCodeMissing    = errors.New("delivery code is required")
	ErrCodeNotAllowed = errors.New("delivery code cannot be used in this status")
)
