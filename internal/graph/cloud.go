package graph

import (
	"fmt"

	"github.com/netsim-dev/netsim/internal/events"
)

// AddCloudNode creates a cloud-kind node and registers it as the base
// instance of a new cloud group.
func (s *Store) AddCloudNode(name, address string) (*Node, error) {
	n, err := s.AddNode(name, KindCloud, address)
	if err != nil {
		return nil, err
	}
	s.muLinks.Lock()
	s.cloudGroups[name] = []string{name}
	s.muLinks.Unlock()
	return n, nil
}

// CloudNodes returns the base names of every cloud group.
func (s *Store) CloudNodes() []string {
	s.muLinks.RLock()
	defer s.muLinks.RUnlock()
	out := make([]string, 0, len(s.cloudGroups))
	for base := range s.cloudGroups {
		out = append(out, base)
	}
	return out
}

// CloudGroup returns the ordered instance list for base (base first).
func (s *Store) CloudGroup(base string) ([]string, error) {
	s.muLinks.RLock()
	defer s.muLinks.RUnlock()
	instances, ok := s.cloudGroups[base]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotCloudGroup, base)
	}
	out := make([]string, len(instances))
	copy(out, instances)
	return out, nil
}

// ScaleUp appends one new instance to base's cloud group, named
// "<base>_instance_<n>" using a per-Store counter rather than a
// package-level global, so instance numbering stays scoped to the
// Store that owns it.
func (s *Store) ScaleUp(base string) (string, error) {
	s.muLinks.Lock()
	if _, ok := s.cloudGroups[base]; !ok {
		s.muLinks.Unlock()
		return "", fmt.Errorf("%w: %q", ErrNotCloudGroup, base)
	}
	s.cloudInstanceID++
	instanceName := fmt.Sprintf("%s_instance_%d", base, s.cloudInstanceID)
	s.muLinks.Unlock()

	baseNode, err := s.GetNode(base)
	if err != nil {
		return "", err
	}
	if _, err := s.AddNode(instanceName, KindCloud, baseNode.Address); err != nil {
		return "", err
	}

	s.muLinks.Lock()
	s.cloudGroups[base] = append(s.cloudGroups[base], instanceName)
	s.muLinks.Unlock()
	return instanceName, nil
}

// ScaleDown removes the most recently added instance from base's group.
// Never removes the base instance; a no-op on a group of size 1.
func (s *Store) ScaleDown(base string) error {
	s.muLinks.Lock()
	instances, ok := s.cloudGroups[base]
	if !ok {
		s.muLinks.Unlock()
		return fmt.Errorf("%w: %q", ErrNotCloudGroup, base)
	}
	if len(instances) <= 1 {
		s.muLinks.Unlock()
		return nil
	}
	last := instances[len(instances)-1]
	s.cloudGroups[base] = instances[:len(instances)-1]
	s.muLinks.Unlock()

	return s.RemoveNode(last)
}

// AddIoTDevice creates an iot-kind node with the given initial battery
// level (clamped to [0,100]).
func (s *Store) AddIoTDevice(name, address string, batteryPct int) (*Node, error) {
	return s.AddNode(name, KindIoT, address, WithBattery(batteryPct))
}

// IsIoT reports whether name is an IoT-kind node.
func (s *Store) IsIoT(name string) (bool, error) {
	s.muNodes.RLock()
	defer s.muNodes.RUnlock()
	n, ok := s.nodes[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	return n.Kind == KindIoT, nil
}

// BatteryLevel returns name's current battery level.
func (s *Store) BatteryLevel(name string) (int, error) {
	s.muNodes.RLock()
	defer s.muNodes.RUnlock()
	n, ok := s.nodes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	if n.Kind != KindIoT {
		return 0, fmt.Errorf("%w: %q", ErrNotIoT, name)
	}
	return n.Battery, nil
}

// DrainBattery reduces name's battery by pct, clamped to [0,100]. If the
// result falls below 10 the node is marked failed as a side effect of
// the same mutation.
func (s *Store) DrainBattery(name string, pct int) (int, error) {
	s.muNodes.Lock()
	n, ok := s.nodes[name]
	if !ok {
		s.muNodes.Unlock()
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	if n.Kind != KindIoT {
		s.muNodes.Unlock()
		return 0, fmt.Errorf("%w: %q", ErrNotIoT, name)
	}
	n.Battery = clampBattery(n.Battery - pct)
	newFailed := n.Battery < 10 && !n.Failed
	if n.Battery < 10 {
		n.Failed = true
	}
	level := n.Battery
	s.muNodes.Unlock()

	if newFailed {
		s.publish(events.NodeFailed, map[string]any{"name": name, "reason": "battery"})
	}
	return level, nil
}
