package deal_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"maak/internal/entities"
	"maak/internal/gateway/rest/backend"
	"maak/internal/handlers/rest/dto"
	"maak/internal/service/deal"
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
	id := mux.Vars(r)["id"]

	accepted, err := h.service.Accept(r.Context(), actor, id)
	if err != nil {
		// A lost acceptance race still carries the fresh row; return it
		// with the conflict so the client can re-render.
		if errors.Is(err, backend.ErrPrecondition) && accepted != nil {
			h.writeDeal(w, http.StatusConflict, accepted)
			return
		}

		switch {
		case errors.Is(err, deal.ErrInvalidID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deal.ErrNotParty):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, deal.ErrNotAcceptable), errors.Is(err, backend.ErrPrecondition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, backend.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeDeal(w, http.StatusOK, accepted)
}

func (h *Handler) writeDeal(w http.ResponseWriter, status int, d *entities.Deal) {
	response := dto.FromDeal(d)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
