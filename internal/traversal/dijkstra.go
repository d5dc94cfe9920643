package traversal

import (
	"container/heap"
	"fmt"
	"math"
)

// distResult is the shared output of a Dijkstra run: finalized
// distances and, where reachable, predecessor links forming the
// shortest-path tree rooted at src.
type distResult struct {
	dist map[string]int
	prev map[string]string
}

// dijkstra runs single-source shortest delay from src, skipping any
// edge that edgeOK rejects (used by the bandwidth-constrained variant).
// It uses a lazy-decrease-key heap: instead of updating an entry's
// position in place, a new entry is pushed on every improvement and
// stale entries are dropped by comparing against the current best
// distance when popped.
func dijkstra(o Oracle, src string, edgeOK func(a, b string) bool) (*distResult, error) {
	r := &distResult{dist: map[string]int{src: 0}, prev: map[string]string{}}
	pq := make(distPQ, 0, 16)
	heap.Push(&pq, &distItem{id: src, dist: 0})
	finalized := map[string]bool{}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		u := item.id
		if finalized[u] {
			continue
		}
		if item.dist != r.dist[u] {
			continue // stale lazy-deleted entry
		}
		finalized[u] = true

		for _, v := range o.Neighbors(u) {
			if edgeOK != nil && !edgeOK(u, v) {
				continue
			}
			w := o.Delay(u, v)
			if w < 0 {
				return nil, fmt.Errorf("%w: %s->%s delay=%d", ErrNegativeWeight, u, v, w)
			}
			nd := r.dist[u] + w
			if cur, seen := r.dist[v]; seen && nd >= cur {
				continue
			}
			r.dist[v] = nd
			r.prev[v] = u
			heap.Push(&pq, &distItem{id: v, dist: nd})
		}
	}
	return r, nil
}

func (r *distResult) pathTo(src, dst string) ([]string, bool) {
	if dst == src {
		return []string{src}, true
	}
	if _, ok := r.dist[dst]; !ok {
		return nil, false
	}
	var rev []string
	for cur := dst; ; {
		rev = append(rev, cur)
		if cur == src {
			break
		}
		p, ok := r.prev[cur]
		if !ok {
			return nil, false
		}
		cur = p
	}
	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path, true
}

// ShortestDelay returns the minimum-total-delay path from src to dst.
func ShortestDelay(o Oracle, src, dst string) (path []string, totalDelay int, ok bool, err error) {
	if err := o.validate(); err != nil {
		return nil, 0, false, err
	}
	if src == "" || dst == "" {
		return nil, 0, false, ErrEmptySource
	}
	r, err := dijkstra(o, src, nil)
	if err != nil {
		return nil, 0, false, err
	}
	path, ok = r.pathTo(src, dst)
	if !ok {
		return nil, 0, false, nil
	}
	return path, r.dist[dst], true, nil
}

type distItem struct {
	id   string
	dist int
}

type distPQ []*distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

const infDist = math.MaxInt32
