package graph

import (
	"fmt"

	"github.com/netsim-dev/netsim/internal/events"
)

// AssignVLAN tags name with the given VLAN id.
func (s *Store) AssignVLAN(name string, tag int) error {
	s.muNodes.Lock()
	n, ok := s.nodes[name]
	if !ok {
		s.muNodes.Unlock()
		return fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	t := tag
	n.VLAN = &t
	s.muNodes.Unlock()

	s.muLinks.Lock()
	s.vlans[name] = tag
	s.muLinks.Unlock()

	s.publish(events.NodeUpdated, map[string]any{"name": name, "vlan": tag})
	return nil
}

// CanCommunicate reports whether a and b may exchange traffic under VLAN
// policy: true iff neither has a tag, or both tags are equal.
func (s *Store) CanCommunicate(a, b string) (bool, error) {
	s.muNodes.RLock()
	na, ok := s.nodes[a]
	if !ok {
		s.muNodes.RUnlock()
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	nb, ok := s.nodes[b]
	if !ok {
		s.muNodes.RUnlock()
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}
	va, vb := na.VLAN, nb.VLAN
	s.muNodes.RUnlock()

	if va == nil || vb == nil {
		return true, nil
	}
	return *va == *vb, nil
}
