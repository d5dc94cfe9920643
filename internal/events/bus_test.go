package events

import (
	"testing"
	"time"
)

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	b := NewBus(nil)
	s1 := b.Subscribe(4)
	s2 := b.Subscribe(4)
	defer s1.Close()
	defer s2.Close()

	b.Publish(New(NodeAdded, time.Time{}, map[string]any{"name": "A"}))

	for _, s := range []Subscription{s1, s2} {
		select {
		case ev := <-s.C():
			if ev.Kind != NodeAdded {
				t.Fatalf("unexpected kind: %v", ev.Kind)
			}
		default:
			t.Fatalf("subscriber %d did not receive the event", s.ID())
		}
	}
}

func TestBus_DropsOnFullBufferWithoutBlocking(t *testing.T) {
	b := NewBus(nil)
	s := b.Subscribe(1)
	defer s.Close()

	b.Publish(New(NodeAdded, time.Time{}, nil))
	b.Publish(New(NodeAdded, time.Time{}, nil)) // buffer full, must drop not block

	stats := b.Stats()
	if stats.Published != 2 {
		t.Fatalf("expected 2 published, got %d", stats.Published)
	}
	if stats.Dropped != 1 {
		t.Fatalf("expected 1 dropped, got %d", stats.Dropped)
	}
}

func TestBus_SlowSubscriberDoesNotAffectOthers(t *testing.T) {
	b := NewBus(nil)
	slow := b.Subscribe(1)
	fast := b.Subscribe(4)
	defer slow.Close()
	defer fast.Close()

	b.Publish(New(NodeAdded, time.Time{}, nil))
	b.Publish(New(NodeRemoved, time.Time{}, nil))

	count := 0
	for {
		select {
		case <-fast.C():
			count++
			continue
		default:
		}
		break
	}
	if count != 2 {
		t.Fatalf("fast subscriber should have received both events, got %d", count)
	}
}

func TestBus_UnsubscribeIsIdempotent(t *testing.T) {
	b := NewBus(nil)
	s := b.Subscribe(1)
	s.Close()
	s.Close() // must not panic
	if got := b.Stats().Subscribers; got != 0 {
		t.Fatalf("expected 0 subscribers after close, got %d", got)
	}
}

