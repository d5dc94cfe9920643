package events

import (
	"time"

	"github.com/google/uuid"
)

// Kind enumerates the recognized event kinds.
type Kind string

// Recognized event kinds.
const (
	NodeAdded        Kind = "node_added"
	NodeRemoved      Kind = "node_removed"
	NodeFailed       Kind = "node_failed"
	NodeRecovered    Kind = "node_recovered"
	NodeUpdated      Kind = "node_updated"
	LinkAdded        Kind = "link_added"
	LinkRemoved      Kind = "link_removed"
	PacketSent       Kind = "packet_sent"
	TopologyChanged  Kind = "topology_changed"
	StatisticsUpdate Kind = "statistics_update"
)

// Event is the structured envelope published to every Subscriber. Data
// holds the kind-specific payload fields.
// ID uniquely identifies the event itself, independent of Subscription
// IDs (which are per-connection, not per-event).
type Event struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"type"`
	Timestamp int64          `json:"timestamp"` // unix seconds
	Data      map[string]any `json:"data"`
}

// New builds an Event stamped with the given time and a fresh ID,
// defaulting Data to an empty (non-nil) map so callers can always
// index into it.
func New(kind Kind, now time.Time, data map[string]any) Event {
	if data == nil {
		data = map[string]any{}
	}
	return Event{ID: uuid.NewString(), Kind: kind, Timestamp: now.Unix(), Data: data}
}
