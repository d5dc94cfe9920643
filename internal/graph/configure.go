package graph

import (
	"fmt"

	"github.com/netsim-dev/netsim/internal/events"
)

// Config bundles the fields the Scenario Engine's "configure" step may
// set on a node. A nil field means "leave unchanged".
type Config struct {
	MTU       *int
	QueueSize *int
	VLAN      *int
}

// Configure applies every non-nil field of cfg to name.
func (s *Store) Configure(name string, cfg Config) error {
	s.muNodes.Lock()
	n, ok := s.nodes[name]
	if !ok {
		s.muNodes.Unlock()
		return fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	if cfg.MTU != nil {
		n.MTU = *cfg.MTU
	}
	if cfg.QueueSize != nil {
		n.QueueSize = *cfg.QueueSize
	}
	mtu, queueSize := n.MTU, n.QueueSize
	s.muNodes.Unlock()

	if cfg.VLAN != nil {
		if err := s.AssignVLAN(name, *cfg.VLAN); err != nil {
			return err
		}
	}

	s.publish(events.NodeUpdated, map[string]any{"name": name, "mtu": mtu, "queue_size": queueSize})
	return nil
}
