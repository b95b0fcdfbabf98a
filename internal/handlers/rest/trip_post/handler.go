package trip_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"maak/internal/entities"
	"maak/internal/handlers/rest/dto"
	"maak/internal/service/trip"
	"maak/pkg/logger"
)

const actorHeader = "X-Actor-Id"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor := r.Header.Get(actorHeader)
	if actor == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req tripCreateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	categories := make([]entities.ParcelCategory, 0, len(req.AcceptedCategories))
	for _, c := range req.AcceptedCategories {
		categories = append(categories, entities.ParcelCategory(c))
	}
	draft := entities.TripDraft{
		OwnerID:            actor,
		Origin:             req.Origin,
		Destination:        req.Destination,
		DepartureAt:        req.DepartureAt,
		CapacityNote:       req.CapacityNote,
		AcceptedCategories: categories,
	}

	created, err := h.service.Create(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrInvalidWilaya),
			errors.Is(err, trip.ErrSameWilaya),
			errors.Is(err, trip.ErrDepartureInPast),
			errors.Is(err, trip.ErrOwnerMissing):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, trip.ErrActiveDealExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromTrip(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
