package traversal

import "errors"

// Programmer-error sentinels. Unreachability is never an error (§4.2
// "Failure semantics") — it is reported as a zero-value result with ok=false.
var (
	ErrEmptySource    = errors.New("traversal: empty source node")
	ErrEmptyNeighbors = errors.New("traversal: oracle returned a nil neighbors function")
	ErrNegativeWeight = errors.New("traversal: negative edge weight")
	ErrNegativeK      = errors.New("traversal: negative k")
)
