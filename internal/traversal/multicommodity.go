package traversal

// Commodity is one (src, dst, demand) request for the greedy
// multi-commodity planner.
type Commodity struct {
	Src    string
	Dst    string
	Demand int
}

// Assignment is one path and the amount of demand routed along it.
type Assignment struct {
	Path     []string
	Assigned int
}

// MultiCommodityFlow greedily routes each commodity in the order
// supplied. Residual directed capacity starts at each undirected
// edge's bandwidth (mirrored into both directions) and is consumed as
// commodities are routed; there is no backtracking between
// commodities once one has consumed capacity. For each commodity, up
// to k augmenting paths are attempted over edges with positive
// residual capacity, each moving min(remaining demand, path's minimum
// residual) units.
func MultiCommodityFlow(o Oracle, allNodes []string, commodities []Commodity, k int) (map[string][]Assignment, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, ErrNegativeK
	}

	residual := map[[2]string]int{}
	for _, n := range allNodes {
		for _, v := range o.Neighbors(n) {
			key := [2]string{n, v}
			if _, ok := residual[key]; !ok {
				residual[key] = o.Bandwidth(n, v)
			}
		}
	}

	result := make(map[string][]Assignment, len(commodities))
	for _, c := range commodities {
		if c.Src == "" || c.Dst == "" {
			return nil, ErrEmptySource
		}
		key := c.Src + "->" + c.Dst
		remaining := c.Demand
		live := residualOracle(o, residual)

		for i := 0; i < k && remaining > 0; i++ {
			r, err := dijkstra(live, c.Src, func(a, b string) bool { return residual[[2]string{a, b}] > 0 })
			if err != nil {
				return nil, err
			}
			path, ok := r.pathTo(c.Src, c.Dst)
			if !ok {
				break
			}
			minResidual := remaining
			for i := 0; i < len(path)-1; i++ {
				cap := residual[[2]string{path[i], path[i+1]}]
				if cap < minResidual {
					minResidual = cap
				}
			}
			if minResidual <= 0 {
				break
			}
			assigned := minResidual
			if assigned > remaining {
				assigned = remaining
			}
			for i := 0; i < len(path)-1; i++ {
				edge := [2]string{path[i], path[i+1]}
				residual[edge] -= assigned
				if residual[edge] < 0 {
					residual[edge] = 0
				}
			}
			result[key] = append(result[key], Assignment{Path: path, Assigned: assigned})
			remaining -= assigned
		}
	}
	return result, nil
}

// residualOracle reports delay/bandwidth/loss unchanged but restricts
// Neighbors to those reachable over positive-residual directed edges,
// so Dijkstra only explores edges the residual-capacity check permits.
func residualOracle(o Oracle, residual map[[2]string]int) Oracle {
	return Oracle{
		Neighbors: func(n string) []string {
			all := o.Neighbors(n)
			out := make([]string, 0, len(all))
			for _, v := range all {
				if residual[[2]string{n, v}] > 0 {
					out = append(out, v)
				}
			}
			return out
		},
		Delay:     o.Delay,
		Bandwidth: o.Bandwidth,
		Loss:      o.Loss,
	}
}
