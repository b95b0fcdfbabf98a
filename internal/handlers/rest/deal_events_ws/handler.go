package deal_events_ws

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"maak/internal/gateway/rest/backend"
	"maak/internal/service/deal"
	"maak/pkg/logger"
)

const (
	actorHeader = "X-Actor-Id"

	dealsTable = "deals"
)

var upgrader = websocket.Upgrader{}

// Handler streams change hints for one deal over a websocket. Each frame
// tells the client "this deal changed, re-fetch it"; no row data crosses
// the socket.
type Handler struct {
	log   handlerLogger
	hub   Hub
	deals Service
}

func New(log handlerLogger, hub Hub, deals Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:   handlerLog,
		hub:   hub,
		deals: deals,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor := r.Header.Get(actorHeader)
	if actor == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id := mux.Vars(r)["id"]
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Only parties to the deal may listen for its changes.
	if _, err := h.deals.Get(r.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, deal.ErrNotParty):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, backend.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote its own error response.
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade failed")
		return
	}

	sub := h.hub.Subscribe(dealsTable, id)

	connLog := h.log.With(
		logger.NewField("deal", id),
		logger.NewField("actor", actor),
	)
	connLog.Info("deal event stream opened")

	// The reader exists only to notice the peer going away.
	go func() {
		defer sub.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for event := range sub.Events() {
		frame := dealEvent{
			DealID: event.RecordID,
			Action: event.Action,
		}
		if err := conn.WriteJSON(frame); err != nil {
			sub.Close()
			break
		}
	}

	if err := conn.Close(); err != nil {
		connLog.With(
			logger.NewField("error", err),
		).Warn("close websocket")
	}
	connLog.Info("deal event stream closed")
}
