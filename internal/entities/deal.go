package entities

import (
	"time"
)

// Deal binds exactly one trip and one parcel request between two parties.
// All status changes happen through named backend procedures; this type is
// the client-side view of the resulting row.
type Deal struct {
	ID                  string
	TripID              string
	ParcelRequestID     string
	SenderID            string // deal owner, the parcel sender
	TravelerID          string
	Status              DealStatus
	SenderAcceptedAt    *time.Time
	TravelerAcceptedAt  *time.Time
	PickupBySender      bool
	PickupByTraveler    bool
	PickupAt            *time.Time
	DeliveredBySender   bool
	DeliveredByTraveler bool
	DeliveredAt         *time.Time
	PickupAddress       string
	PickupPhotoURL      string
	PaymentStatus       string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	ClosedAt            *time.Time
}

// IsParty reports whether userID is one of the two deal parties.
func (d *Deal) IsParty(userID string) bool {
	return userID != "" && (userID == d.SenderID || userID == d.TravelerID)
}

// CodeVerification is the backend's verdict on a submitted delivery code.
// Message is user-facing and shown verbatim.
type CodeVerification struct {
	Success bool
	Message string
}

type DealStatus string

const (
	DealProposed                DealStatus = "proposed"
	DealAcceptedBySender        DealStatus = "accepted_by_sender"
	DealAcceptedByTraveler      DealStatus = "accepted_by_traveler"
	DealMutuallyAccepted        DealStatus = "mutually_accepted"
	DealPickupLocationSelected  DealStatus = "pickup_location_selected"
	DealPickupLocationConfirmed DealStatus = "pickup_location_confirmed"
	DealPickedUp                DealStatus = "picked_up"
	DealInTransit               DealStatus = "in_transit"
	DealDelivered               DealStatus = "delivered"
	DealDeliveredConfirmed      DealStatus = "delivered_confirmed"
	DealClosed                  DealStatus = "closed"
	DealCancelled               DealStatus = "cancelled"
	DealExpired                 DealStatus = "expired"
)

func (s DealStatus) String() string {
	return string(s)
}

// Legacy status spellings still present in old rows. They are folded into
// the current vocabulary before any comparison; no other code may compare
// raw status strings.
var legacyDealStatuses = map[DealStatus]DealStatus{
	"pickup_confirmed":    DealPickupLocationConfirmed,
	"delivered_confirmed": DealDelivered,
	"accepted":            DealMutuallyAccepted,
}

// NormalizeDealStatus maps legacy spellings onto the current vocabulary.
// Unknown values pass through unchanged so predicates can reject them.
func NormalizeDealStatus(s DealStatus) DealStatus {
	if canonical, ok := legacyDealStatuses[s]; ok {
		return canonical
	}
	return s
}

// statusRank orders the main forward chain. Terminal side branches
// (cancelled, expired) are not ranked.
var statusRank = map[DealStatus]int{
	DealProposed:                0,
	DealAcceptedBySender:        1,
	DealAcceptedByTraveler:      1,
	DealMutuallyAccepted:        2,
	DealPickupLocationSelected:  3,
	DealPickupLocationConfirmed: 4,
	DealPickedUp:                5,
	DealInTransit:               6,
	DealDelivered:               7,
	DealDeliveredConfirmed:      8,
	DealClosed:                  9,
}

// IsTerminalDealStatus reports whether no further transition is possible.
func IsTerminalDealStatus(s DealStatus) bool {
	switch NormalizeDealStatus(s) {
	case DealClosed, DealCancelled, DealExpired:
		return true
	default:
		return false
	}
}

// CanTransitionDeal reports whether moving from one status to another is a
// legal forward step. Skipping intermediate states is allowed because the
// backend collapses some micro-states; moving backwards never is. The
// backend stays the authority, this only keeps the client from requesting
// transitions that can never succeed.
func CanTransitionDeal(from, to DealStatus) bool {
	from = NormalizeDealStatus(from)
	to = NormalizeDealStatus(to)

	if from == to {
		return true
	}
	if IsTerminalDealStatus(from) {
		return false
	}
	if to == DealCancelled || to == DealExpired {
		return true
	}

	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return fromRank < toRank
}

// chatUnlockedStatuses is the trust boundary of the marketplace: before a
// deal reaches one of these, no contact details and no messaging are shown.
// delivered_confirmed is kept even though normalization folds it away, in
// case a row arrives pre-normalized from an older backend.
var chatUnlockedStatuses = map[DealStatus]struct{}{
	DealMutuallyAccepted:        {},
	DealPickupLocationSelected:  {},
	DealPickupLocationConfirmed: {},
	DealPickedUp:                {},
	DealInTransit:               {},
	DealDelivered:               {},
	DealDeliveredConfirmed:      {},
	DealClosed:                  {},
}

// IsChatUnlocked reports whether the two parties may see each other's
// contact details and exchange messages. Empty or unknown status means no.
func IsChatUnlocked(s DealStatus) bool {
	_, ok := chatUnlockedStatuses[NormalizeDealStatus(s)]
	return ok
}

// IsMutuallyAcceptedOrLater is the same set as IsChatUnlocked; it exists
// under its own name because pickup confirmation and delivery-code display
// gate on "the deal is past mutual acceptance", not on chat specifically.
func IsMutuallyAcceptedOrLater(s DealStatus) bool {
	return IsChatUnlocked(s)
}

func IsDealClosed(s DealStatus) bool {
	return NormalizeDealStatus(s) == DealClosed
}

// CanMarkDelivered is intentionally permissive: backends that collapse the
// pickup micro-states still need the delivery action offered.
func CanMarkDelivered(s DealStatus) bool {
	switch NormalizeDealStatus(s) {
	case DealPickupLocationConfirmed, DealPickedUp, DealInTransit, DealMutuallyAccepted:
		return true
	default:
		return false
	}
}

// CanAcceptDeal reports whether an accept action may still be offered.
func CanAcceptDeal(s DealStatus) bool {
	switch NormalizeDealStatus(s) {
	case DealProposed, DealAcceptedBySender, DealAcceptedByTraveler:
		return true
	default:
		return false
	}
}

// CanVerifyDeliveryCode reports whether the traveler may submit the
// delivery code for this status.
func CanVerifyDeliveryCode(s DealStatus) bool {
	switch NormalizeDealStatus(s) {
	case DealMutuallyAccepted, DealPickedUp:
		return true
	default:
		return false
	}
}
