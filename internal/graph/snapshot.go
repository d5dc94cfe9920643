package graph

import (
	"fmt"

	"github.com/netsim-dev/netsim/internal/events"
)

// Document is the wire form of a full topology snapshot. It always
// carries Attributes alongside Nodes and Connections, so delay,
// bandwidth, and loss survive an export/import round-trip rather than
// being silently dropped.
type Document struct {
	Nodes       []NodeDoc   `json:"nodes" yaml:"nodes"`
	Connections [][2]string `json:"connections" yaml:"connections"`
	Attributes  []AttrDoc   `json:"attributes" yaml:"attributes"`
}

// NodeDoc is one entry in Document.Nodes.
type NodeDoc struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"ip" yaml:"ip"`
	Kind    string `json:"kind" yaml:"kind"`
	VLAN    *int   `json:"vlan,omitempty" yaml:"vlan,omitempty"`
	Failed  bool   `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// AttrDoc is one entry in Document.Attributes.
type AttrDoc struct {
	A         string  `json:"a" yaml:"a"`
	B         string  `json:"b" yaml:"b"`
	Delay     int     `json:"delay,omitempty" yaml:"delay,omitempty"`
	Bandwidth int     `json:"bandwidth,omitempty" yaml:"bandwidth,omitempty"`
	Loss      float64 `json:"loss,omitempty" yaml:"loss,omitempty"`
}

// ExportSnapshot serializes the whole observable topology: node set,
// adjacency, and attributes. Counters and queues are intentionally
// excluded; they are runtime telemetry, not topology.
func (s *Store) ExportSnapshot() Document {
	s.muNodes.RLock()
	doc := Document{Nodes: make([]NodeDoc, 0, len(s.order))}
	for _, name := range s.order {
		n := s.nodes[name]
		var vlan *int
		if n.VLAN != nil {
			v := *n.VLAN
			vlan = &v
		}
		doc.Nodes = append(doc.Nodes, NodeDoc{
			Name: n.Name, Address: n.Address, Kind: string(n.Kind),
			VLAN: vlan, Failed: n.Failed,
		})
	}
	s.muNodes.RUnlock()

	s.muLinks.RLock()
	seen := make(map[linkKey]bool)
	for a, neighbors := range s.adj {
		for b := range neighbors {
			key := orderedLinkKey(a, b)
			if seen[key] {
				continue
			}
			seen[key] = true
			doc.Connections = append(doc.Connections, [2]string{key.a, key.b})
			if attrs, ok := s.attrs[key]; ok {
				doc.Attributes = append(doc.Attributes, AttrDoc{
					A: key.a, B: key.b,
					Delay: attrs.delay, Bandwidth: attrs.bandwidth, Loss: attrs.loss,
				})
			}
		}
	}
	s.muLinks.RUnlock()
	return doc
}

// ImportSnapshot destructively replaces the Store's observable state with
// doc. Any name referenced by Connections or Attributes that is not
// present in Nodes fails the import atomically (no partial state change).
func (s *Store) ImportSnapshot(doc Document) error {
	names := make(map[string]bool, len(doc.Nodes))
	for _, nd := range doc.Nodes {
		names[nd.Name] = true
	}
	for _, conn := range doc.Connections {
		if !names[conn[0]] || !names[conn[1]] {
			return fmt.Errorf("%w: connection references unknown node %q/%q", ErrNodeNotFound, conn[0], conn[1])
		}
	}
	for _, attr := range doc.Attributes {
		if !names[attr.A] || !names[attr.B] {
			return fmt.Errorf("%w: attribute references unknown node %q/%q", ErrNodeNotFound, attr.A, attr.B)
		}
	}

	// Build the replacement graph with no publisher attached: importing a
	// snapshot emits a single topology_changed event, not one per node/edge.
	fresh := New(WithClock(s.now))
	for _, nd := range doc.Nodes {
		n, err := fresh.AddNode(nd.Name, Kind(nd.Kind), nd.Address)
		if err != nil {
			return err
		}
		if nd.VLAN != nil {
			if err := fresh.AssignVLAN(n.Name, *nd.VLAN); err != nil {
				return err
			}
		}
		if nd.Failed {
			if err := fresh.FailNode(n.Name); err != nil {
				return err
			}
		}
	}
	for _, conn := range doc.Connections {
		if err := fresh.Connect(conn[0], conn[1]); err != nil {
			return err
		}
	}
	for _, attr := range doc.Attributes {
		if err := fresh.SetLinkDelay(attr.A, attr.B, attr.Delay); err != nil {
			return err
		}
		if err := fresh.SetBandwidth(attr.A, attr.B, attr.Bandwidth); err != nil {
			return err
		}
		if err := fresh.SetPacketLoss(attr.A, attr.B, attr.Loss); err != nil {
			return err
		}
	}

	// Swap in fresh's maps under both locks rather than copying the Store
	// struct itself, which would copy live mutex state (go vet: copylocks).
	s.muNodes.Lock()
	s.muLinks.Lock()
	s.nodes = fresh.nodes
	s.order = fresh.order
	s.adj = fresh.adj
	s.attrs = fresh.attrs
	s.vlans = fresh.vlans
	s.firewall = fresh.firewall
	s.queues = fresh.queues
	s.packetsSent = fresh.packetsSent
	s.packetsReceived = fresh.packetsReceived
	s.linkTraffic = fresh.linkTraffic
	s.orderedTraffic = fresh.orderedTraffic
	s.cloudGroups = fresh.cloudGroups
	s.cloudInstanceID = fresh.cloudInstanceID
	s.muLinks.Unlock()
	s.muNodes.Unlock()

	s.publish(events.TopologyChanged, nil)
	return nil
}
