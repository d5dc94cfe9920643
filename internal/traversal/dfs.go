package traversal

// BoundedDFS returns any path from src to dst of length at most
// maxDepth (in edges), preferring the first one found in neighbor
// order — depth-first, not necessarily shortest. A visited set
// prevents revisiting nodes within the current exploration branch.
func BoundedDFS(o Oracle, src, dst string, maxDepth int) (path []string, ok bool, err error) {
	if err := o.validate(); err != nil {
		return nil, false, err
	}
	if src == "" || dst == "" {
		return nil, false, ErrEmptySource
	}
	if maxDepth < 0 {
		return nil, false, ErrNegativeK
	}
	if src == dst {
		return []string{src}, true, nil
	}

	visited := map[string]bool{src: true}
	stack := []string{src}
	found := dfsVisit(o, src, dst, maxDepth, visited, &stack)
	if !found {
		return nil, false, nil
	}
	out := make([]string, len(stack))
	copy(out, stack)
	return out, true, nil
}

// dfsVisit explores depth-first from cur, appending to *stack as it
// descends and popping on backtrack. Returns true once dst is found.
func dfsVisit(o Oracle, cur, dst string, remaining int, visited map[string]bool, stack *[]string) bool {
	if remaining == 0 {
		return false
	}
	for _, nbr := range o.Neighbors(cur) {
		if visited[nbr] {
			continue
		}
		visited[nbr] = true
		*stack = append(*stack, nbr)
		if nbr == dst {
			return true
		}
		if dfsVisit(o, nbr, dst, remaining-1, visited, stack) {
			return true
		}
		*stack = (*stack)[:len(*stack)-1]
		delete(visited, nbr)
	}
	return false
}
