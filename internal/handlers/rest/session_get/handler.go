package session_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"maak/internal/service/session"
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

// With consume_redirect=true the stored post-login redirect is returned
// and cleared in the same call, so clients read it exactly once.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor := r.Header.Get(actorHeader)
	if actor == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	state, err := h.service.State(r.Context(), actor)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if r.URL.Query().Get("consume_redirect") == "true" {
		route, err := h.service.ConsumePostLoginRedirect(r.Context(), actor)
		if err != nil {
			h.writeError(w, err)
			return
		}
		state.PostLoginRedirect = route
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(state)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrInvalidID) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
}
