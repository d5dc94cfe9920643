package traversal_test

import "github.com/netsim-dev/netsim/internal/traversal"

// fixtureGraph is a small in-memory undirected weighted graph used to
// build Oracles for tests without touching the Graph Store.
type fixtureGraph struct {
	adj   map[string][]string
	delay map[[2]string]int
	bw    map[[2]string]int
	loss  map[[2]string]float64
}

func newFixture() *fixtureGraph {
	return &fixtureGraph{
		adj:   map[string][]string{},
		delay: map[[2]string]int{},
		bw:    map[[2]string]int{},
		loss:  map[[2]string]float64{},
	}
}

func (f *fixtureGraph) link(a, b string, delay, bandwidth int) {
	f.adj[a] = append(f.adj[a], b)
	f.adj[b] = append(f.adj[b], a)
	f.delay[[2]string{a, b}] = delay
	f.delay[[2]string{b, a}] = delay
	f.bw[[2]string{a, b}] = bandwidth
	f.bw[[2]string{b, a}] = bandwidth
}

func (f *fixtureGraph) oracle() traversal.Oracle {
	return traversal.Oracle{
		Neighbors: func(n string) []string { return f.adj[n] },
		Delay:     func(a, b string) int { return f.delay[[2]string{a, b}] },
		Bandwidth: func(a, b string) int { return f.bw[[2]string{a, b}] },
		Loss:      func(a, b string) float64 { return f.loss[[2]string{a, b}] },
	}
}

// linear builds A-B-C-D-E with uniform delay/bandwidth.
func linearFixture() *fixtureGraph {
	f := newFixture()
	nodes := []string{"A", "B", "C", "D", "E"}
	for i := 0; i < len(nodes)-1; i++ {
		f.link(nodes[i], nodes[i+1], 10, 100)
	}
	return f
}

// diamondFixture builds two equal-cost paths A-B-D and A-C-D.
func diamondFixture() *fixtureGraph {
	f := newFixture()
	f.link("A", "B", 5, 100)
	f.link("B", "D", 5, 100)
	f.link("A", "C", 5, 50)
	f.link("C", "D", 5, 50)
	return f
}
