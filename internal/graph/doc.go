// Package graph is the authoritative in-memory topology store for the
// network simulator: nodes, bidirectional links with delay/bandwidth/loss
// attributes, VLAN membership, firewall policy, and per-node runtime state
// (failure, queues, traffic counters).
//
// Store splits its locking in two: one RWMutex guards the node table,
// a second guards adjacency and per-edge attribute maps. Traversal
// callers (internal/traversal) borrow an immutable read view for the
// duration of a query. Mutators publish to the configured Publisher
// after releasing their locks, and not one event per call: AddNode,
// RemoveNode, Connect and Disconnect emit their own kind followed by
// topology_changed; Configure with a VLAN emits node_updated twice;
// SetPacketLoss, SetWirelessRange, AddFirewallRule, the queue
// operations and every counter except RecordPacketSent emit nothing;
// DrainBattery emits node_failed only when the node newly fails.
//
// Errors:
//
//	ErrEmptyName       - node name is the empty string.
//	ErrNodeExists      - addNode on a name already present.
//	ErrNodeNotFound    - operation referenced a missing node.
//	ErrEdgeNotFound    - operation referenced a missing edge.
//	ErrSelfConnect     - connect(a, a).
//	ErrInvalidDelay    - negative delay.
//	ErrInvalidBandwidth - negative bandwidth.
//	ErrInvalidLoss     - loss probability outside [0,1].
package graph
