// Package persistence adapts the Graph Store's Document snapshot to
// durable storage: a file-backed implementation for the --snapshot-file
// flag, and a Postgres-backed one for deployments that pass
// --postgres-dsn. The core (internal/graph) never imports this
// package or pgx directly — cmd/netsimd wires a Persister in.
package persistence

import (
	"context"

	"github.com/netsim-dev/netsim/internal/graph"
)

// Persister saves a topology snapshot and loads the most recently
// saved one.
type Persister interface {
	SaveSnapshot(ctx context.Context, doc graph.Document) error
	LoadSnapshot(ctx context.Context) (graph.Document, error)
}
