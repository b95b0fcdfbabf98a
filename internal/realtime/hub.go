package realtime

import (
	"context"
	"sync"
	"time"
)

// Event is one row change reported by the backend's change feed.
type Event struct {
	Table    string
	RecordID string
	Action   string // INSERT, UPDATE or DELETE
}

// Subscription receives the events matching its table and record filter.
// Events carry no row payload; a subscriber re-fetches the row through the
// gateway instead of patching local state.
type Subscription struct {
	table    string
	recordID string // empty matches every record of the table
	events   chan Event

	once sync.Once
	hub  *Hub
}

// Events is the subscriber's receive channel. It is closed on Close.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.events)
	})
}

func (s *Subscription) matches(event Event) bool {
	if s.table != event.Table {
		return false
	}
	return s.recordID == "" || s.recordID == event.RecordID
}

// Hub fans change-feed events out to in-process subscribers. Publishing
// never blocks: a subscriber that cannot keep up loses events, which is
// acceptable because events are only re-fetch hints.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[*Subscription]struct{}),
	}
}

const subscriptionBuffer = 8

// Subscribe registers interest in changes to table, optionally narrowed to
// one record. The caller must Close the subscription when done.
func (h *Hub) Subscribe(table, recordID string) *Subscription {
	sub := &Subscription{
		table:    table,
		recordID: recordID,
		events:   make(chan Event, subscriptionBuffer),
		hub:      h,
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Publish delivers event to every matching subscriber.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		if !sub.matches(event) {
			continue
		}
		select {
		case sub.events <- event:
		default: // slow subscriber, drop
		}
	}
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

// AwaitChange blocks until a matching change arrives, the timeout passes
// or ctx is cancelled. It reports whether a change was seen; a timeout is
// the normal outcome, not an error, so callers proceed with a re-fetch
// either way they choose.
func (h *Hub) AwaitChange(ctx context.Context, table, recordID string, timeout time.Duration) bool {
	sub := h.Subscribe(table, recordID)
	defer sub.Close()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-sub.Events():
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}
