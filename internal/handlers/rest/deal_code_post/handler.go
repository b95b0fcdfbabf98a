package deal_code_post

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

type verifyCodeResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Deal    *dto.Deal `json:"deal,omitempty"`
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
	id := mux.Vars(r)["id"]

	var req verifyCodeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	verdict, fresh, err := h.service.VerifyDeliveryCode(r.Context(), actor, id, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, deal.ErrInvalidID), errors.Is(err, deal.ErrCodeMissing):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deal.ErrNotParty), errors.Is(err, deal.ErrTravelerOnly):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, deal.ErrCodeNotAllowed):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, backend.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := verifyCodeResponse{
		Success: verdict.Success,
		Message: verdict.Message,
	}
	if fresh != nil {
		dealDTO := dto.FromDeal(fresh)
		response.Deal = &dealDTO
	}

	// A wrong code is a domain verdict, not a transport failure, so the
	// response stays 200 with success=false.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
