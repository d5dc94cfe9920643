package scenario

import (
	"github.com/netsim-dev/netsim/internal/graph"
	"github.com/netsim-dev/netsim/internal/traversal"
)

// storeOracle adapts a live Graph Store into the kernel's Oracle
// contract. Attribute lookups are only ever invoked on pairs the
// store itself reported as adjacent via Neighbors, so the ignored
// errors below can't fire in practice.
func storeOracle(store *graph.Store) traversal.Oracle {
	return traversal.Oracle{
		Neighbors: func(n string) []string {
			nbrs, err := store.GetNeighbors(n)
			if err != nil {
				return nil
			}
			return nbrs
		},
		Delay: func(a, b string) int {
			d, _ := store.GetLinkDelay(a, b)
			return d
		},
		Bandwidth: func(a, b string) int {
			bw, _ := store.GetBandwidth(a, b)
			return bw
		},
		Loss: func(a, b string) float64 {
			l, _ := store.GetPacketLoss(a, b)
			return l
		},
	}
}
