package deal_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"maak/internal/gateway/rest/backend"
	"maak/internal/handlers/rest/dto"
	"maak/internal/service/deal"
	"maak/pkg/logger"
)

const actorHeader = "X-Actor-Id"

type dealCreateResponse struct {
	Deal           dto.Deal `json:"deal"`
	AlreadyExisted bool     `json:"already_existed"`
}

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

	var req dealCreateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Propose(r.Context(), actor, req.TripID, req.ParcelRequestID)
	if err != nil {
		switch {
		case errors.Is(err, deal.ErrInvalidID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deal.ErrSelfDeal), errors.Is(err, deal.ErrNotParty):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, deal.ErrPostNotActive):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, backend.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, backend.ErrPrecondition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dealCreateResponse{
		Deal:           dto.FromDeal(result.Deal),
		AlreadyExisted: result.AlreadyExisted,
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
