package events

import "sync"

// Collector is an in-memory Subscriber the Scenario Engine installs to
// trace every event a run produces for inclusion in the run's result.
type Collector struct {
	bus *Bus
	sub Subscription

	mu     sync.Mutex
	events []Event
	done   chan struct{}
}

// NewCollector subscribes to bus and starts draining events into an
// internal slice until Close is called.
func NewCollector(bus *Bus) *Collector {
	c := &Collector{bus: bus, sub: bus.Subscribe(256), done: make(chan struct{})}
	go c.drain()
	return c
}

func (c *Collector) drain() {
	for ev := range c.sub.C() {
		c.mu.Lock()
		c.events = append(c.events, ev)
		c.mu.Unlock()
	}
	close(c.done)
}

// Events returns a snapshot of everything collected so far.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Close unsubscribes and waits for the drain goroutine to finish.
func (c *Collector) Close() {
	c.sub.Close()
	<-c.done
}
