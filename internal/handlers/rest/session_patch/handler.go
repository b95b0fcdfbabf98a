package session_patch

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor := r.Header.Get(actorHeader)
	if actor == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req sessionPatchRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.apply(r, actor, req); err != nil {
		if errors.Is(err, session.ErrInvalidID) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	state, err := h.service.State(r.Context(), actor)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
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

func (h *Handler) apply(r *http.Request, actor string, req sessionPatchRequest) error {
	ctx := r.Context()

	if req.OnboardingDone != nil && *req.OnboardingDone {
		if err := h.service.MarkOnboardingDone(ctx, actor); err != nil {
			return err
		}
	}
	if req.PendingVerificationEmail != nil {
		if *req.PendingVerificationEmail == "" {
			if err := h.service.ClearPendingVerification(ctx, actor); err != nil {
				return err
			}
		} else if err := h.service.SetPendingVerificationEmail(ctx, actor, *req.PendingVerificationEmail); err != nil {
			return err
		}
	}
	if req.PostLoginRedirect != nil {
		if err := h.service.SetPostLoginRedirect(ctx, actor, *req.PostLoginRedirect); err != nil {
			return err
		}
	}
	return nil
}
