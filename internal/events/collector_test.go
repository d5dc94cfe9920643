package events

import (
	"testing"
	"time"
)

func TestCollector_CollectsPublishedEvents(t *testing.T) {
	b := NewBus(nil)
	c := NewCollector(b)

	b.Publish(New(NodeAdded, time.Time{}, map[string]any{"name": "A"}))
	b.Publish(New(LinkAdded, time.Time{}, map[string]any{"a": "A", "b": "B"}))

	c.Close() // drains until the subscriber channel is closed

	got := c.Events()
	if len(got) != 2 {
		t.Fatalf("expected 2 collected events, got %d: %+v", len(got), got)
	}
	if got[0].Kind != NodeAdded || got[1].Kind != LinkAdded {
		t.Fatalf("unexpected event order: %+v", got)
	}
}

func TestCollector_EventsReturnsACopy(t *testing.T) {
	b := NewBus(nil)
	c := NewCollector(b)
	b.Publish(New(NodeAdded, time.Time{}, nil))
	c.Close()

	snap := c.Events()
	snap[0].Kind = "tampered"

	fresh := c.Events()
	if fresh[0].Kind != NodeAdded {
		t.Fatalf("mutating a returned snapshot must not affect the collector's state")
	}
}
