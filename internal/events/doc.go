// Package events implements a single-writer fan-out: the Graph Store
// and Simulation State call Publish after restoring their own
// invariants, and every registered Subscriber receives the event in
// the order it was published. A slow or stalled subscriber never
// blocks the publisher — each subscriber has its own bounded buffer
// and events are dropped (and counted) once it fills.
//
// Each subscriber gets a buffered channel, subscriber IDs come from
// an atomic counter, the subscriber map is RWMutex-guarded, and
// published/dropped totals are tracked as best-effort Prometheus
// counters.
package events
