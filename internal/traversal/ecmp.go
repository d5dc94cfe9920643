package traversal

// ECMPNextHops computes distances from dst (Dijkstra, run against dst
// as the root) and returns every neighbor v of node satisfying
// dist(v) + delay(node,v) == dist(node) — the equal-cost next-hop set.
// Symmetric edge weights make the reversed-root trick valid on an
// undirected graph.
func ECMPNextHops(o Oracle, node, dst string) ([]string, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if node == "" || dst == "" {
		return nil, ErrEmptySource
	}
	r, err := dijkstra(o, dst, nil)
	if err != nil {
		return nil, err
	}
	nodeDist, ok := r.dist[node]
	if !ok {
		return nil, nil
	}
	var hops []string
	for _, v := range o.Neighbors(node) {
		vd, ok := r.dist[v]
		if !ok {
			continue
		}
		if vd+o.Delay(node, v) == nodeDist {
			hops = append(hops, v)
		}
	}
	return hops, nil
}

// ECMPKPaths enumerates up to k simple paths from src to dst that
// follow only edges lying on some shortest path from src: with dist
// computed from src, edge u->v qualifies iff dist[u] + delay(u,v) ==
// dist[v]. Returns fewer than k if the shortest-path DAG has fewer
// total source-to-dst paths.
func ECMPKPaths(o Oracle, src, dst string, k int) ([][]string, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if src == "" || dst == "" {
		return nil, ErrEmptySource
	}
	if k < 0 {
		return nil, ErrNegativeK
	}
	if k == 0 {
		return nil, nil
	}
	r, err := dijkstra(o, src, nil)
	if err != nil {
		return nil, err
	}
	if _, ok := r.dist[dst]; !ok {
		return nil, nil
	}
	if src == dst {
		return [][]string{{src}}, nil
	}

	var paths [][]string
	var walk func(cur string, acc []string)
	walk = func(cur string, acc []string) {
		if len(paths) >= k {
			return
		}
		acc = append(acc, cur)
		if cur == dst {
			p := make([]string, len(acc))
			copy(p, acc)
			paths = append(paths, p)
			return
		}
		for _, v := range o.Neighbors(cur) {
			if len(paths) >= k {
				return
			}
			dv, ok := r.dist[v]
			if !ok {
				continue
			}
			if r.dist[cur]+o.Delay(cur, v) != dv {
				continue
			}
			onPath := false
			for _, p := range acc {
				if p == v {
					onPath = true
					break
				}
			}
			if !onPath {
				walk(v, acc)
			}
		}
	}
	walk(src, nil)
	return paths, nil
}
