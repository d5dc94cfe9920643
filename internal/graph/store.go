package graph

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/netsim-dev/netsim/internal/events"
)

// Store is the authoritative in-memory topology. Two independent
// RWMutexes guard it: muNodes protects the node table and every
// per-node scalar (failure, battery, queue, sent/received counters);
// muLinks protects adjacency plus every per-edge/global map
// (attributes, VLAN, firewall, link-traffic counters, cloud groups). Traversal callers hold only
// RLocks for the duration of a query; every mutator takes both locks,
// muNodes first, to avoid deadlock against callers that only ever
// take one.
type Store struct {
	pub events.Publisher
	now func() time.Time

	muNodes sync.RWMutex
	nodes   map[string]*Node
	order   []string // insertion order, for deterministic getAllNodes/getNeighbors

	muLinks  sync.RWMutex
	adj      map[string]map[string]struct{}
	attrs    map[linkKey]*linkAttrs
	vlans    map[string]int // mirrors Node.VLAN; CanCommunicate reads Node.VLAN, not this map
	firewall map[firewallKey]bool

	queues map[string][]Packet

	packetsSent     map[string]int
	packetsReceived map[string]int
	linkTraffic     map[linkKey]int
	orderedTraffic  map[orderedKey]int

	cloudGroups     map[string][]string
	cloudInstanceID int
}

type firewallKey struct {
	src, dst, protocol string
}

type orderedKey struct {
	src, dst string
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithPublisher attaches the Publisher every mutator emits to. Without
// this option, events are silently discarded (useful for algorithm-only
// tests that don't care about the push channel).
func WithPublisher(pub events.Publisher) Option {
	return func(s *Store) { s.pub = pub }
}

// WithClock overrides the time source used to stamp emitted events.
// Defaults to time.Now; tests can inject a fixed clock for determinism.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New constructs an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		nodes:           make(map[string]*Node),
		adj:             make(map[string]map[string]struct{}),
		attrs:           make(map[linkKey]*linkAttrs),
		vlans:           make(map[string]int),
		firewall:        make(map[firewallKey]bool),
		queues:          make(map[string][]Packet),
		packetsSent:     make(map[string]int),
		packetsReceived: make(map[string]int),
		linkTraffic:     make(map[linkKey]int),
		orderedTraffic:  make(map[orderedKey]int),
		cloudGroups:     make(map[string][]string),
		now:             time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) publish(kind events.Kind, data map[string]any) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(events.New(kind, s.now(), data))
}

// AddNode creates a new node. kind must be one of the recognized Kind
// values; address and port/battery are kind-specific decorations applied
// via NodeOption.
func (s *Store) AddNode(name string, kind Kind, address string, opts ...NodeOption) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	s.muNodes.Lock()
	if _, exists := s.nodes[name]; exists {
		s.muNodes.Unlock()
		return nil, fmt.Errorf("%w: %q", ErrNodeExists, name)
	}
	n := &Node{
		Name:      name,
		Address:   address,
		Kind:      kind,
		MTU:       defaultMTU,
		QueueSize: defaultQueueSize,
	}
	for _, o := range opts {
		o(n)
	}
	if kind == KindIoT {
		n.Battery = clampBattery(n.Battery)
	}
	s.nodes[name] = n
	s.order = append(s.order, name)
	s.muNodes.Unlock()

	s.muLinks.Lock()
	s.adj[name] = make(map[string]struct{})
	s.muLinks.Unlock()

	s.publish(events.NodeAdded, map[string]any{
		"name": name, "kind": string(kind), "address": address,
	})
	s.publish(events.TopologyChanged, nil)
	return n.clone(), nil
}

// NodeOption customizes a Node at creation time.
type NodeOption func(*Node)

// WithMTU overrides the default MTU (1500).
func WithMTU(mtu int) NodeOption { return func(n *Node) { n.MTU = mtu } }

// WithQueueSize overrides the default max queue size (10).
func WithQueueSize(size int) NodeOption { return func(n *Node) { n.QueueSize = size } }

// WithPort sets the host-only Port field.
func WithPort(port int) NodeOption { return func(n *Node) { n.Port = port } }

// WithBattery sets the iot-only initial battery level.
func WithBattery(pct int) NodeOption { return func(n *Node) { n.Battery = pct } }

// RemoveNode deletes name and atomically purges every adjacency,
// attribute, rule, counter, VLAN entry, queue, and cloud-group membership
// that references it.
func (s *Store) RemoveNode(name string) error {
	s.muNodes.Lock()
	if _, ok := s.nodes[name]; !ok {
		s.muNodes.Unlock()
		return fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	delete(s.nodes, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	delete(s.queues, name)
	delete(s.packetsSent, name)
	delete(s.packetsReceived, name)
	s.muNodes.Unlock()

	s.muLinks.Lock()
	for neighbor := range s.adj[name] {
		delete(s.adj[neighbor], name)
		delete(s.attrs, orderedLinkKey(name, neighbor))
	}
	delete(s.adj, name)
	delete(s.vlans, name)

	for k := range s.firewall {
		if k.src == name || k.dst == name {
			delete(s.firewall, k)
		}
	}
	for k := range s.linkTraffic {
		if k.a == name || k.b == name {
			delete(s.linkTraffic, k)
		}
	}
	for k := range s.orderedTraffic {
		if k.src == name || k.dst == name {
			delete(s.orderedTraffic, k)
		}
	}
	for base, instances := range s.cloudGroups {
		if base == name {
			delete(s.cloudGroups, base)
			continue
		}
		filtered := instances[:0]
		for _, inst := range instances {
			if inst != name {
				filtered = append(filtered, inst)
			}
		}
		s.cloudGroups[base] = filtered
	}
	s.muLinks.Unlock()

	s.publish(events.NodeRemoved, map[string]any{"name": name})
	s.publish(events.TopologyChanged, nil)
	return nil
}

// GetNode returns a defensive copy of the named node.
func (s *Store) GetNode(name string) (*Node, error) {
	s.muNodes.RLock()
	defer s.muNodes.RUnlock()
	n, ok := s.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	return n.clone(), nil
}

// HasNode reports whether name exists, without the cost of cloning.
func (s *Store) HasNode(name string) bool {
	s.muNodes.RLock()
	defer s.muNodes.RUnlock()
	_, ok := s.nodes[name]
	return ok
}

// AllNodes returns every node name in deterministic insertion order.
func (s *Store) AllNodes() []string {
	s.muNodes.RLock()
	defer s.muNodes.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// GetNeighbors returns name's neighbors in deterministic (lexicographic)
// order, satisfying the oracle contract traversal algorithms rely on.
func (s *Store) GetNeighbors(name string) ([]string, error) {
	s.muLinks.RLock()
	defer s.muLinks.RUnlock()
	neighbors, ok := s.adj[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	out := make([]string, 0, len(neighbors))
	for n := range neighbors {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

func clampBattery(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
