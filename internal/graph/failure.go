package graph

import (
	"fmt"

	"github.com/netsim-dev/netsim/internal/events"
)

// FailNode marks name as failed.
func (s *Store) FailNode(name string) error {
	s.muNodes.Lock()
	n, ok := s.nodes[name]
	if !ok {
		s.muNodes.Unlock()
		return fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	n.Failed = true
	s.muNodes.Unlock()

	s.publish(events.NodeFailed, map[string]any{"name": name})
	return nil
}

// IsFailed reports whether name is currently marked failed.
func (s *Store) IsFailed(name string) (bool, error) {
	s.muNodes.RLock()
	defer s.muNodes.RUnlock()
	n, ok := s.nodes[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	return n.Failed, nil
}

// Recover clears name's failed flag.
func (s *Store) Recover(name string) error {
	s.muNodes.Lock()
	n, ok := s.nodes[name]
	if !ok {
		s.muNodes.Unlock()
		return fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	n.Failed = false
	s.muNodes.Unlock()

	s.publish(events.NodeRecovered, map[string]any{"name": name})
	return nil
}
