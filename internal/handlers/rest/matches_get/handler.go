package matches_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"maak/internal/gateway/rest/backend"
	"maak/internal/handlers/rest/dto"
	"maak/pkg/logger"
)

// The query names exactly one pivot post: either a parcel request looking
// for trips, or a trip looking for parcel requests.
type Handler struct {
	log      handlerLogger
	matching MatchingService
	trips    TripService
	parcels  ParcelService
}

func New(log handlerLogger, matching MatchingService, trips TripService, parcels ParcelService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		matching: matching,
		trips:    trips,
		parcels:  parcels,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parcelID := r.URL.Query().Get("parcel_request_id")
	tripID := r.URL.Query().Get("trip_id")

	switch {
	case parcelID != "" && tripID == "":
		h.tripsForParcel(w, r, parcelID)
	case tripID != "" && parcelID == "":
		h.parcelsForTrip(w, r, tripID)
	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

func (h *Handler) tripsForParcel(w http.ResponseWriter, r *http.Request, parcelID string) {
	parcel, err := h.parcels.Get(r.Context(), parcelID)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	matches, err := h.matching.RankTripsForParcel(r.Context(), *parcel)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, dto.FromTripMatches(matches))
}

func (h *Handler) parcelsForTrip(w http.ResponseWriter, r *http.Request, tripID string) {
	trip, err := h.trips.Get(r.Context(), tripID)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	matches, err := h.matching.RankParcelsForTrip(r.Context(), *trip)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, dto.FromParcelMatches(matches))
}

func (h *Handler) writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, backend.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
