package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"maak/internal/entities"
	"maak/internal/handlers/rest/dto"
	"maak/internal/service/parcel"
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

	var req parcelCreateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.ParcelDraft{
		OwnerID:         actor,
		Origin:          req.Origin,
		Destination:     req.Destination,
		WindowStart:     req.WindowStart,
		WindowEnd:       req.WindowEnd,
		Category:        entities.ParcelCategory(req.Category),
		SizeWeight:      req.SizeWeight,
		RewardAmount:    req.RewardAmount,
		DeclaredContent: req.DeclaredContent,
		Notes:           req.Notes,
		DeliveryAddress: req.DeliveryAddress,
	}
	if req.DeliveryType != nil {
		deliveryType := entities.DeliveryPointType(*req.DeliveryType)
		draft.DeliveryType = &deliveryType
	}

	created, err := h.service.Create(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidWilaya),
			errors.Is(err, parcel.ErrSameWilaya),
			errors.Is(err, parcel.ErrInvalidWindow),
			errors.Is(err, parcel.ErrWindowInPast),
			errors.Is(err, parcel.ErrInvalidCategory),
			errors.Is(err, parcel.ErrNegativeReward),
			errors.Is(err, parcel.ErrOwnerMissing):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrActiveDealExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromParcelRequest(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
