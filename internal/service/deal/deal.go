package deal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"maak/internal/entities"
	"maak/internal/gateway/rest/backend"
)

// Service is the client-side half of the deal state machine. It validates
// input, refuses actions the current status can never allow, and delegates
// every actual transition to the backend, re-fetching the row afterwards
// instead of trusting an optimistic local patch.
type Service struct {
	backend Backend
	storage Storage
}

func New(b Backend, s Storage) *Service {
	return &Service{
		backend: b,
		storage: s,
	}
}

// ProposeResult distinguishes a fresh proposal from a redirect to an
// already-existing deal for the same (trip, parcel) pair.
type ProposeResult struct {
	Deal           *entities.Deal
	AlreadyExisted bool
}

// Propose creates a deal from a chosen trip/parcel pair. The actor must
// own exactly one side of the pair, both posts must still be active, and
// an existing non-cancelled deal for the pair short-circuits into a
// redirect instead of a duplicate.
func (s *Service) Propose(ctx context.Context, actor, tripID, parcelRequestID string) (ProposeResult, error) {
	if !isValidID(actor) || !isValidID(tripID) || !isValidID(parcelRequestID) {
		return ProposeResult{}, ErrInvalidID
	}

	trip, err := s.backend.GetTrip(ctx, tripID)
	if err != nil {
		return ProposeResult{}, fmt.Errorf("propose: %w", err)
	}
	parcel, err := s.backend.GetParcelRequest(ctx, parcelRequestID)
	if err != nil {
		return ProposeResult{}, fmt.Errorf("propose: %w", err)
	}

	ownsTrip := trip.OwnerID == actor
	ownsParcel := parcel.OwnerID == actor
	switch {
	case ownsTrip && ownsParcel:
		return ProposeResult{}, ErrSelfDeal
	case !ownsTrip && !ownsParcel:
		return ProposeResult{}, ErrNotParty
	}

	if trip.Status != entities.TripActive || parcel.Status != entities.ParcelActive {
		return ProposeResult{}, ErrPostNotActive
	}

	existing, err := s.backend.FindDealByPair(ctx, actor, tripID, parcelRequestID)
	if err != nil {
		return ProposeResult{}, fmt.Errorf("propose, duplicate check: %w", err)
	}
	if existing != nil {
		return ProposeResult{Deal: existing, AlreadyExisted: true}, nil
	}

	dealID, err := s.backend.ProposeDeal(ctx, actor, parcelRequestID, tripID)
	if err != nil {
		return ProposeResult{}, fmt.Errorf("propose: %w", err)
	}

	created, err := s.backend.GetDeal(ctx, actor, dealID)
	if err != nil {
		return ProposeResult{}, fmt.Errorf("propose, re-fetch: %w", err)
	}
	return ProposeResult{Deal: created}, nil
}

// Accept records the actor's acceptance. The backend advances the status
// toward mutually_accepted once both sides have accepted. A precondition
// failure means the other party got there first; the fresh row is
// returned alongside the error so callers can re-render.
func (s *Service) Accept(ctx context.Context, actor, dealID string) (*entities.Deal, error) {
	if !isValidID(actor) || !isValidID(dealID) {
		return nil, ErrInvalidID
	}

	current, err := s.backend.GetDeal(ctx, actor, dealID)
	if err != nil {
		return nil, fmt.Errorf("accept: %w", err)
	}
	if !current.IsParty(actor) {
		return nil, ErrNotParty
	}
	if !entities.CanAcceptDeal(current.Status) {
		return nil, ErrNotAcceptable
	}

	if err := s.backend.AcceptDeal(ctx, actor, dealID); err != nil {
		if errors.Is(err, backend.ErrPrecondition) {
			if fresh, refetchErr := s.backend.GetDeal(ctx, actor, dealID); refetchErr == nil {
				return fresh, fmt.Errorf("accept: %w", err)
			}
		}
		return nil, fmt.Errorf("accept: %w", err)
	}

	fresh, err := s.backend.GetDeal(ctx, actor, dealID)
	if err != nil {
		return nil, fmt.Errorf("accept, re-fetch: %w", err)
	}
	return fresh, nil
}

// ConfirmPickupInput carries the traveler's two explicit acknowledgements
// and the proof photo. All three are mandatory.
type ConfirmPickupInput struct {
	ContentOK        bool
	SizeOK           bool
	PhotoContentType string
	Photo            io.Reader
}

// ConfirmPickup is traveler-only and allowed only while the deal sits at
// mutually_accepted. The photo is uploaded first; its public URL plus the
// two acknowledgements go to the confirm_pickup procedure.
func (s *Service) ConfirmPickup(ctx context.Context, actor, dealID string, input ConfirmPickupInput) (*entities.Deal, error) {
	if !isValidID(actor) || !isValidID(dealID) {
		return nil, ErrInvalidID
	}
	if !input.ContentOK || !input.SizeOK {
		return nil, ErrConfirmationsMissing
	}
	if input.Photo == nil {
		return nil, ErrPhotoMissing
	}

	current, err := s.backend.GetDeal(ctx, actor, dealID)
	if err != nil {
		return nil, fmt.Errorf("confirm pickup: %w", err)
	}
	if !current.IsParty(actor) {
		return nil, ErrNotParty
	}
	if actor != current.TravelerID {
		return nil, ErrTravelerOnly
	}
	if entities.NormalizeDealStatus(current.Status) != entities.DealMutuallyAccepted {
		return nil, ErrPickupNotAllowed
	}

	photoURL, err := s.storage.UploadPickupProof(ctx, dealID, input.PhotoContentType, input.Photo)
	if err != nil {
		return nil, fmt.Errorf("confirm pickup, photo upload: %w", err)
	}

	ok, err := s.backend.ConfirmPickup(ctx, actor, dealID, input.ContentOK, input.SizeOK, photoURL)
	if err != nil {
		return nil, fmt.Errorf("confirm pickup: %w", err)
	}
	if !ok {
		return nil, ErrPickupRejected
	}

	fresh, err := s.backend.GetDeal(ctx, actor, dealID)
	if err != nil {
		return nil, fmt.Errorf("confirm pickup, re-fetch: %w", err)
	}
	return fresh, nil
}

// VerifyDeliveryCode submits the code the traveler heard from the
// recipient. The code's correctness is only ever known to the backend.
// On failure the verdict message is surfaced and nothing local changes;
// on success the fresh deal is returned.
func (s *Service) VerifyDeliveryCode(ctx context.Context, actor, dealID, code string) (entities.CodeVerification, *entities.Deal, error) {
	if !isValidID(actor) || !isValidID(dealID) {
		return entities.CodeVerification{}, nil, ErrInvalidID
	}
	code = normalizeCode(code)
	if code == "" {
		return entities.CodeVerification{}, nil, ErrCodeMissing
	}

	current, err := s.backend.GetDeal(ctx, actor, dealID)
	if err != nil {
		return entities.CodeVerification{}, nil, fmt.Errorf("verify delivery code: %w", err)
	}
	if !current.IsParty(actor) {
		return entities.CodeVerification{}, nil, ErrNotParty
	}
	if actor != current.TravelerID {
		return entities.CodeVerification{}, nil, ErrTravelerOnly
	}
	if !entities.CanVerifyDeliveryCode(current.Status) {
		return entities.CodeVerification{}, nil, ErrCodeNotAllowed
	}

	verdict, err := s.backend.VerifyDeliveryCode(ctx, actor, dealID, code)
	if err != nil {
		return entities.CodeVerification{}, nil, fmt.Errorf("verify delivery code: %w", err)
	}
	if !verdict.Success {
		return verdict, current, nil
	}

	fresh, err := s.backend.GetDeal(ctx, actor, dealID)
	if err != nil {
		return verdict, nil, fmt.Errorf("verify delivery code, re-fetch: %w", err)
	}
	return verdict, fresh, nil
}

// DeliveryCode returns the sender-visible secret. Sender-only, and only
// once the deal is past mutual acceptance.
func (s *Service) DeliveryCode(ctx context.Context, actor, dealID string) (string, error) {
	if !isValidID(actor) || !isValidID(dealID) {
		return "", ErrInvalidID
	}

	current, err := s.backend.GetDeal(ctx, actor, dealID)
	if err != nil {
		return "", fmt.Errorf("delivery code: %w", err)
	}
	if !current.IsParty(actor) {
		return "", ErrNotParty
	}
	if actor != current.SenderID {
		return "", ErrSenderOnly
	}
	if !entities.IsMutuallyAcceptedOrLater(current.Status) {
		return "", ErrCodeNotAllowed
	}

	code, err := s.backend.DeliveryCode(ctx, actor, dealID)
	if err != nil {
		return "", fmt.Errorf("delivery code: %w", err)
	}
	return code, nil
}

// View is a deal as one party sees it: the row itself, the unlock state,
// the counterpart's contact card (only once unlocked) and the set of
// actions the UI may offer. Actions excluded here are transitions that
// could never succeed, so the client simply does not request them.
type View struct {
	Deal         *entities.Deal
	ChatUnlocked bool
	Counterpart  *entities.ContactCard

	CanAccept        bool
	CanConfirmPickup bool
	CanVerifyCode    bool
	CanMarkDelivered bool
	CanShowCode      bool
}

// Get assembles the actor's view of a deal. Contact details stay hidden
// until the deal unlocks; that rule is the product's trust boundary.
func (s *Service) Get(ctx context.Context, actor, dealID string) (View, error) {
	if !isValidID(actor) || !isValidID(dealID) {
		return View{}, ErrInvalidID
	}

	current, err := s.backend.GetDeal(ctx, actor, dealID)
	if err != nil {
		return View{}, fmt.Errorf("get deal: %w", err)
	}
	if !current.IsParty(actor) {
		return View{}, ErrNotParty
	}

	isTraveler := actor == current.TravelerID
	unlocked := entities.IsChatUnlocked(current.Status)

	view := View{
		Deal:             current,
		ChatUnlocked:     unlocked,
		CanAccept:        entities.CanAcceptDeal(current.Status),
		CanConfirmPickup: isTraveler && entities.NormalizeDealStatus(current.Status) == entities.DealMutuallyAccepted,
		CanVerifyCode:    isTraveler && entities.CanVerifyDeliveryCode(current.Status),
		CanMarkDelivered: entities.CanMarkDelivered(current.Status),
		CanShowCode:      !isTraveler && entities.IsMutuallyAcceptedOrLater(current.Status),
	}

	if unlocked {
		counterpartID := current.SenderID
		if !isTraveler {
			counterpartID = current.TravelerID
		}

		profile, err := s.backend.GetProfile(ctx, counterpartID)
		if err != nil {
			return View{}, fmt.Errorf("get deal, counterpart profile: %w", err)
		}
		contact := profile.Contact()
		view.Counterpart = &contact
	}

	return view, nil
}
