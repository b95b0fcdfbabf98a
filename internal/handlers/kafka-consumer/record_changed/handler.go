package record_changed

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"maak/internal/realtime"
	"maak/pkg/logger"
)

// changedEvent is the row-change notification the backend publishes for
// every mutation. The payload intentionally carries no row data: consumers
// re-fetch through the gateway.
type changedEvent struct {
	Table    string `json:"table"`
	RecordID string `json:"record_id"`
	Action   string `json:"action"`
}

type Handler struct {
	hub                      Hub
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, hub Hub, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		hub:                      hub,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() closed, exit
				h.log.Info("record.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			h.messageProcessing(sess, message)

		case <-sess.Context().Done():
			// Session closed (rebalance or consumer group stop), exit
			h.log.Info("record.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. Malformed messages are
// marked and skipped; losing a hint only costs a subscriber one re-fetch.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	var event changedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("record.changed handler received bad message")
		sess.MarkMessage(message, "")
		return
	}

	if event.Table == "" {
		h.log.With(
			logger.NewField("offset", message.Offset),
		).Warn("record.changed handler received event without a table")
		sess.MarkMessage(message, "")
		return
	}

	h.hub.Publish(realtime.Event{
		Table:    event.Table,
		RecordID: event.RecordID,
		Action:   event.Action,
	})

	h.log.With(
		logger.NewField("table", event.Table),
		logger.NewField("record", event.RecordID),
		logger.NewField("action", event.Action),
		logger.NewField("offset", message.Offset),
	).Info("record.changed: published")

	sess.MarkMessage(message, "")
}
