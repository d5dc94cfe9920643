package traversal

// LinkStateTable runs Dijkstra from src and, for every other reached
// node d, resolves the next hop: the unique neighbor of src that lies
// on the shortest path to d. It follows parent pointers from d back
// toward src until the immediate successor of src is identified.
func LinkStateTable(o Oracle, src string) (map[string]string, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if src == "" {
		return nil, ErrEmptySource
	}
	r, err := dijkstra(o, src, nil)
	if err != nil {
		return nil, err
	}
	table := make(map[string]string, len(r.dist))
	for d := range r.dist {
		if d == src {
			continue
		}
		cur := d
		for r.prev[cur] != src {
			cur = r.prev[cur]
		}
		table[d] = cur
	}
	return table, nil
}

// IsRPF reports whether incomingNeighbor lies on a shortest path from
// src to node — i.e. whether a packet claiming src as its origin could
// legitimately have arrived at node via incomingNeighbor. An
// incomingNeighbor that is not adjacent to node never passes.
func IsRPF(o Oracle, node, incomingNeighbor, src string) (bool, error) {
	if err := o.validate(); err != nil {
		return false, err
	}
	if node == "" || incomingNeighbor == "" || src == "" {
		return false, ErrEmptySource
	}
	adjacent := false
	for _, v := range o.Neighbors(node) {
		if v == incomingNeighbor {
			adjacent = true
			break
		}
	}
	if !adjacent {
		return false, nil
	}
	r, err := dijkstra(o, src, nil)
	if err != nil {
		return false, err
	}
	dn, ok := r.dist[node]
	if !ok {
		return false, nil
	}
	di, ok := r.dist[incomingNeighbor]
	if !ok {
		return false, nil
	}
	return di+o.Delay(incomingNeighbor, node) == dn, nil
}
