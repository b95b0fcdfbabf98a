package deal_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	view, err := h.service.Get(r.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, deal.ErrInvalidID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deal.ErrNotParty):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, backend.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromDealView(view)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
