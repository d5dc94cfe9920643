package graph

import (
	"fmt"

	"github.com/netsim-dev/netsim/internal/events"
)

// Connect creates an undirected edge between a and b. Re-connecting an
// existing edge is a no-op, not an error.
func (s *Store) Connect(a, b string) error {
	if a == b {
		return ErrSelfConnect
	}
	if !s.HasNode(a) {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	if !s.HasNode(b) {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}

	s.muLinks.Lock()
	_, already := s.adj[a][b]
	if !already {
		s.adj[a][b] = struct{}{}
		s.adj[b][a] = struct{}{}
		s.attrs[orderedLinkKey(a, b)] = &linkAttrs{}
	}
	s.muLinks.Unlock()

	if already {
		return nil
	}
	s.publish(events.LinkAdded, map[string]any{"a": a, "b": b, "delay": 0, "bandwidth": 0})
	s.publish(events.TopologyChanged, nil)
	return nil
}

// Disconnect removes the edge between a and b. Fails if no edge exists.
func (s *Store) Disconnect(a, b string) error {
	s.muLinks.Lock()
	if _, ok := s.adj[a][b]; !ok {
		s.muLinks.Unlock()
		return fmt.Errorf("%w: %q <-> %q", ErrDisconnected, a, b)
	}
	delete(s.adj[a], b)
	delete(s.adj[b], a)
	delete(s.attrs, orderedLinkKey(a, b))
	s.muLinks.Unlock()

	s.publish(events.LinkRemoved, map[string]any{"a": a, "b": b})
	s.publish(events.TopologyChanged, nil)
	return nil
}

func (s *Store) edgeAttrs(a, b string) (*linkAttrs, error) {
	attrs, ok := s.attrs[orderedLinkKey(a, b)]
	if !ok {
		return nil, fmt.Errorf("%w: %q <-> %q", ErrEdgeNotFound, a, b)
	}
	return attrs, nil
}

// SetLinkDelay sets the symmetric delay (ms) on an existing edge.
func (s *Store) SetLinkDelay(a, b string, ms int) error {
	if ms < 0 {
		return ErrInvalidDelay
	}
	s.muLinks.Lock()
	attrs, err := s.edgeAttrs(a, b)
	if err != nil {
		s.muLinks.Unlock()
		return err
	}
	attrs.delay = ms
	s.muLinks.Unlock()

	s.publish(events.LinkAdded, map[string]any{"a": a, "b": b, "delay": ms})
	return nil
}

// GetLinkDelay returns the delay on an existing edge (0 if unset).
func (s *Store) GetLinkDelay(a, b string) (int, error) {
	s.muLinks.RLock()
	defer s.muLinks.RUnlock()
	attrs, err := s.edgeAttrs(a, b)
	if err != nil {
		return 0, err
	}
	return attrs.delay, nil
}

// SetBandwidth sets the symmetric bandwidth (capacity units) on an
// existing edge.
func (s *Store) SetBandwidth(a, b string, cap int) error {
	if cap < 0 {
		return ErrInvalidBandwidth
	}
	s.muLinks.Lock()
	attrs, err := s.edgeAttrs(a, b)
	if err != nil {
		s.muLinks.Unlock()
		return err
	}
	attrs.bandwidth = cap
	s.muLinks.Unlock()

	s.publish(events.LinkAdded, map[string]any{"a": a, "b": b, "bandwidth": cap})
	return nil
}

// GetBandwidth returns the bandwidth on an existing edge (0 if unset).
func (s *Store) GetBandwidth(a, b string) (int, error) {
	s.muLinks.RLock()
	defer s.muLinks.RUnlock()
	attrs, err := s.edgeAttrs(a, b)
	if err != nil {
		return 0, err
	}
	return attrs.bandwidth, nil
}

// SetPacketLoss sets the symmetric packet-loss probability on an existing
// edge. p must be in [0,1].
func (s *Store) SetPacketLoss(a, b string, p float64) error {
	if p < 0 || p > 1 {
		return ErrInvalidLoss
	}
	s.muLinks.Lock()
	attrs, err := s.edgeAttrs(a, b)
	if err != nil {
		s.muLinks.Unlock()
		return err
	}
	attrs.loss = p
	s.muLinks.Unlock()
	return nil
}

// GetPacketLoss returns the loss probability on an existing edge (0 if unset).
func (s *Store) GetPacketLoss(a, b string) (float64, error) {
	s.muLinks.RLock()
	defer s.muLinks.RUnlock()
	attrs, err := s.edgeAttrs(a, b)
	if err != nil {
		return 0, err
	}
	return attrs.loss, nil
}

// SetWirelessRange sets the symmetric wireless range on an existing edge.
// r must be positive.
func (s *Store) SetWirelessRange(a, b string, r int) error {
	if r <= 0 {
		return ErrInvalidRange
	}
	s.muLinks.Lock()
	attrs, err := s.edgeAttrs(a, b)
	if err != nil {
		s.muLinks.Unlock()
		return err
	}
	attrs.wlRange = r
	attrs.hasRange = true
	s.muLinks.Unlock()
	return nil
}

// GetWirelessRange returns the wireless range on an existing edge, and
// whether one has been set at all.
func (s *Store) GetWirelessRange(a, b string) (int, bool, error) {
	s.muLinks.RLock()
	defer s.muLinks.RUnlock()
	attrs, err := s.edgeAttrs(a, b)
	if err != nil {
		return 0, false, err
	}
	return attrs.wlRange, attrs.hasRange, nil
}

// HasEdge reports whether an edge exists between a and b.
func (s *Store) HasEdge(a, b string) bool {
	s.muLinks.RLock()
	defer s.muLinks.RUnlock()
	_, ok := s.adj[a][b]
	return ok
}
