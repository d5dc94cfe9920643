package simstate

import (
	"math/rand/v2"
	"time"

	"github.com/netsim-dev/netsim/internal/events"
	"github.com/netsim-dev/netsim/internal/graph"
)

// State is the simulation clock, scheduled-delivery queue, and
// packet-loss sampler layered on top of a Graph Store. A single State
// is not safe for concurrent use from multiple goroutines without
// external locking — the control surface is expected to serialize
// calls the same way it would any other mutator.
type State struct {
	store *graph.Store
	pub   events.Publisher
	now   func() time.Time

	cursor int64
	queue  scheduledQueue
	seq    int64

	arrived map[string]bool

	rng *rand.Rand
}

// Option configures a State at construction time.
type Option func(*State)

// WithPublisher attaches an event publisher for packet_sent notifications.
func WithPublisher(p events.Publisher) Option { return func(s *State) { s.pub = p } }

// WithClock overrides the wall-clock source (tests use a fixed time).
func WithClock(now func() time.Time) Option { return func(s *State) { s.now = now } }

// New constructs a State bound to store, seeded deterministically so
// packet-loss sampling is reproducible across runs.
func New(store *graph.Store, seed uint64, opts ...Option) *State {
	s := &State{
		store:   store,
		now:     time.Now,
		arrived: make(map[string]bool),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cursor returns the current simulation time in milliseconds.
func (s *State) Cursor() int64 { return s.cursor }

func (s *State) publish(kind events.Kind, data map[string]any) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(events.New(kind, s.now(), data))
}
