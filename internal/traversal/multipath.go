package traversal

// WeightedPath pairs a discovered path with its bottleneck bandwidth
// and, after normalization, its share of total traffic.
type WeightedPath struct {
	Path       []string
	Bottleneck int
	Weight     float64
}

// MultipathFlowAware iteratively finds up to k shortest-delay paths
// from src to dst, banning the edges of each path before searching
// for the next one, then normalizes bottleneck bandwidths into
// weights summing to 1.0 (uniform fallback if every bottleneck is 0).
func MultipathFlowAware(o Oracle, src, dst string, k int) ([]WeightedPath, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if src == "" || dst == "" {
		return nil, ErrEmptySource
	}
	if k < 0 {
		return nil, ErrNegativeK
	}

	banned := map[[2]string]bool{}
	live := bannedOracle(o, banned)

	var found []WeightedPath
	for i := 0; i < k; i++ {
		path, _, ok, err := ShortestDelay(live, src, dst)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		bottleneck := pathBottleneck(o, path)
		if bottleneck == 0 {
			break
		}
		found = append(found, WeightedPath{Path: path, Bottleneck: bottleneck})
		for i := 0; i < len(path)-1; i++ {
			banned[[2]string{path[i], path[i+1]}] = true
			banned[[2]string{path[i+1], path[i]}] = true
		}
	}

	var total int
	for _, f := range found {
		total += f.Bottleneck
	}
	if total == 0 {
		if len(found) > 0 {
			uniform := 1.0 / float64(len(found))
			for i := range found {
				found[i].Weight = uniform
			}
		}
		return found, nil
	}
	for i := range found {
		found[i].Weight = float64(found[i].Bottleneck) / float64(total)
	}
	return found, nil
}

func pathBottleneck(o Oracle, path []string) int {
	if len(path) < 2 {
		return 0
	}
	min := -1
	for i := 0; i < len(path)-1; i++ {
		bw := o.Bandwidth(path[i], path[i+1])
		if min == -1 || bw < min {
			min = bw
		}
	}
	if min < 0 {
		return 0
	}
	return min
}

// bannedOracle wraps o so that any directed edge present in banned is
// reported as having no neighbor link, without mutating the underlying
// store.
func bannedOracle(o Oracle, banned map[[2]string]bool) Oracle {
	return Oracle{
		Neighbors: func(n string) []string {
			all := o.Neighbors(n)
			out := make([]string, 0, len(all))
			for _, v := range all {
				if !banned[[2]string{n, v}] {
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
