package graph

import "errors"

// Sentinel errors for Store operations. Callers should branch with
// errors.Is against these rather than string-matching messages.
var (
	// ErrEmptyName indicates a node name was the empty string.
	ErrEmptyName = errors.New("graph: node name is empty")

	// ErrNodeExists indicates addNode was called with a name already present.
	ErrNodeExists = errors.New("graph: node already exists")

	// ErrNodeNotFound indicates an operation referenced a missing node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrSelfConnect indicates connect(a, a) was attempted.
	ErrSelfConnect = errors.New("graph: cannot connect a node to itself")

	// ErrInvalidDelay indicates a negative delay value.
	ErrInvalidDelay = errors.New("graph: delay must be non-negative")

	// ErrInvalidBandwidth indicates a negative bandwidth value.
	ErrInvalidBandwidth = errors.New("graph: bandwidth must be non-negative")

	// ErrInvalidLoss indicates a loss probability outside [0,1].
	ErrInvalidLoss = errors.New("graph: packet loss must be in [0,1]")

	// ErrInvalidRange indicates a non-positive wireless range.
	ErrInvalidRange = errors.New("graph: wireless range must be positive")

	// ErrDisconnected indicates disconnect was called on a non-existent edge.
	ErrDisconnected = errors.New("graph: no such link")

	// ErrUnknownKind indicates an unrecognized node kind tag.
	ErrUnknownKind = errors.New("graph: unknown node kind")

	// ErrNotIoT indicates an IoT-only operation on a non-IoT node.
	ErrNotIoT = errors.New("graph: node is not an IoT device")

	// ErrNotCloudGroup indicates a cloud-scaling operation on an unknown group.
	ErrNotCloudGroup = errors.New("graph: no such cloud group")
)
