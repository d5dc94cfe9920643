package traversal

// ShortestHops runs breadth-first search from src and returns the
// minimum-edge-count path to dst. src == dst returns the singleton
// path. Ties among equal-length paths are broken deterministically by
// the oracle's neighbor-enumeration order.
func ShortestHops(o Oracle, src, dst string) (path []string, ok bool, err error) {
	if err := o.validate(); err != nil {
		return nil, false, err
	}
	if src == "" || dst == "" {
		return nil, false, ErrEmptySource
	}
	if src == dst {
		return []string{src}, true, nil
	}

	parent := map[string]string{src: ""}
	visited := map[string]bool{src: true}
	queue := []string{src}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range o.Neighbors(cur) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			parent[nbr] = cur
			if nbr == dst {
				return reconstruct(parent, src, dst), true, nil
			}
			queue = append(queue, nbr)
		}
	}
	return nil, false, nil
}

// reconstruct walks parent pointers from dst back to src and reverses
// the result into a forward path.
func reconstruct(parent map[string]string, src, dst string) []string {
	var rev []string
	for cur := dst; ; {
		rev = append(rev, cur)
		if cur == src {
			break
		}
		cur = parent[cur]
	}
	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}
