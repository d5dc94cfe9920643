package control

import (
	"github.com/netsim-dev/netsim/internal/graph"
	"github.com/netsim-dev/netsim/internal/traversal"
)

// storeOracle adapts the Server's Graph Store into the kernel's Oracle
// contract, the same way internal/scenario does. Lookup errors are
// swallowed because the kernel only ever calls these on pairs it has
// already seen reported by Neighbors.
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
