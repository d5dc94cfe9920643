package events

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Subscription is a handle representing one consumer of the bus.
type Subscription interface {
	// C returns the channel events are delivered on.
	C() <-chan Event
	// Close unregisters the subscription and closes its channel.
	Close()
	// ID returns the subscription's stable identifier.
	ID() int64
}

// Publisher is the narrow interface the Graph Store and Simulation State
// depend on, so neither needs to know about subscriber management.
type Publisher interface {
	Publish(ev Event)
}

// Stats reports bus-wide counters for observability.
type Stats struct {
	Subscribers int
	Published   uint64
	Dropped     uint64
}

// Bus is a single-writer, multi-reader fan-out. Publish never blocks on a
// slow subscriber: each subscriber owns a bounded buffer and events are
// dropped once it is full.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int64]*subscriber
	nextID int64

	published atomic.Uint64
	dropped   atomic.Uint64

	mPublished prometheus.Counter
	mDropped   prometheus.Counter
}

// NewBus constructs an empty Bus. If reg is non-nil, publish/drop counters
// are registered against it; a nil registry disables metrics entirely
// (useful for tests that don't want global-registry pollution).
func NewBus(reg prometheus.Registerer) *Bus {
	b := &Bus{subs: make(map[int64]*subscriber)}
	if reg != nil {
		b.mPublished = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netsim",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Total events published on the bus.",
		})
		b.mDropped = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netsim",
			Subsystem: "events",
			Name:      "dropped_total",
			Help:      "Total events dropped because a subscriber's buffer was full.",
		})
		reg.MustRegister(b.mPublished, b.mDropped)
	}
	return b
}

// Publish fans ev out to every current subscriber. Delivery to each
// subscriber is non-blocking; a full buffer drops the event for that
// subscriber only, never for the others, and never blocks the caller.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	subs := make([]*subscriber, 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.RUnlock()

	b.published.Add(1)
	if b.mPublished != nil {
		b.mPublished.Inc()
	}

	for _, s := range subs {
		select {
		case s.ch <- ev:
		default:
			b.dropped.Add(1)
			if b.mDropped != nil {
				b.mDropped.Inc()
			}
		}
	}
}

// Subscribe registers a new subscriber with the given buffer size (a
// non-positive size defaults to 64) and returns its handle.
func (b *Bus) Subscribe(buffer int) Subscription {
	if buffer <= 0 {
		buffer = 64
	}
	id := atomic.AddInt64(&b.nextID, 1)
	s := &subscriber{id: id, ch: make(chan Event, buffer), bus: b}

	b.mu.Lock()
	b.subs[id] = s
	b.mu.Unlock()
	return s
}

// Unsubscribe removes a subscription and closes its channel. Safe to call
// more than once.
func (b *Bus) Unsubscribe(id int64) {
	b.mu.Lock()
	s, ok := b.subs[id]
	if ok {
		delete(b.subs, id)
	}
	b.mu.Unlock()
	if ok {
		close(s.ch)
	}
}

// Stats returns a snapshot of bus-wide counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	n := len(b.subs)
	b.mu.RUnlock()
	return Stats{Subscribers: n, Published: b.published.Load(), Dropped: b.dropped.Load()}
}

type subscriber struct {
	id  int64
	ch  chan Event
	bus *Bus
}

func (s *subscriber) C() <-chan Event { return s.ch }
func (s *subscriber) ID() int64       { return s.id }
func (s *subscriber) Close()          { s.bus.Unsubscribe(s.id) }
