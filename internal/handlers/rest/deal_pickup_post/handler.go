package deal_pickup_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"maak/internal/gateway/rest/backend"
	"maak/internal/handlers/rest/dto"
	"maak/internal/service/deal"
	"maak/pkg/logger"
)

const (
	actorHeader = "X-Actor-Id"

	// Proof photos come from phone cameras; anything above this is a
	// client bug, not a bigger photo.
	maxPhotoBytes = 10 << 20
)

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

// The request is multipart/form-data: boolean fields content_ok and
// size_ok plus a photo file part.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor := r.Header.Get(actorHeader)
	if actor == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	contentOK, _ := strconv.ParseBool(r.FormValue("content_ok"))
	sizeOK, _ := strconv.ParseBool(r.FormValue("size_ok"))

	input := deal.ConfirmPickupInput{
		ContentOK: contentOK,
		SizeOK:    sizeOK,
	}

	photo, header, err := r.FormFile("photo")
	if err == nil {
		defer photo.Close()
		input.Photo = photo
		input.PhotoContentType = header.Header.Get("Content-Type")
	}

	confirmed, err := h.service.ConfirmPickup(r.Context(), actor, id, input)
	if err != nil {
		switch {
		case errors.Is(err, deal.ErrInvalidID),
			errors.Is(err, deal.ErrConfirmationsMissing),
			errors.Is(err, deal.ErrPhotoMissing):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deal.ErrNotParty), errors.Is(err, deal.ErrTravelerOnly):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, deal.ErrPickupNotAllowed),
			errors.Is(err, deal.ErrPickupRejected),
			errors.Is(err, backend.ErrPrecondition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, backend.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromDeal(confirmed)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
