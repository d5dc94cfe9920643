package traversal_test

import (
	"testing"

	"github.com/netsim-dev/netsim/internal/traversal"
)

func TestECMPNextHops_BothBranchesEqualCost(t *testing.T) {
	f := newFixture()
	f.link("A", "B", 5, 10)
	f.link("B", "D", 5, 10)
	f.link("A", "C", 5, 10)
	f.link("C", "D", 5, 10)

	hops, err := traversal.ECMPNextHops(f.oracle(), "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	set := map[string]bool{}
	for _, h := range hops {
		set[h] = true
	}
	if !set["B"] || !set["C"] {
		t.Fatalf("expected both B and C as ECMP next hops, got %v", hops)
	}
}

func TestECMPNextHops_DiamondHasTwoEqualCostHops(t *testing.T) {
	f := diamondFixture() // A-B-D delay 10, A-C-D delay 10 too (equal by construction)
	hops, err := traversal.ECMPNextHops(f.oracle(), "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if len(hops) != 2 {
		t.Fatalf("diamond fixture has two equal-cost branches, got %v", hops)
	}
}

func TestECMPKPaths_ReturnsUpToK(t *testing.T) {
	f := diamondFixture()
	paths, err := traversal.ECMPKPaths(f.oracle(), "A", "D", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 equal-cost paths, got %d: %v", len(paths), paths)
	}
}

func TestECMPKPaths_FewerThanKWhenDAGSmaller(t *testing.T) {
	f := linearFixture()
	paths, err := traversal.ECMPKPaths(f.oracle(), "A", "E", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 {
		t.Fatalf("a simple chain has exactly one shortest path, got %d", len(paths))
	}
}

func TestECMPKPaths_ZeroKReturnsNone(t *testing.T) {
	f := diamondFixture()
	paths, err := traversal.ECMPKPaths(f.oracle(), "A", "D", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 0 {
		t.Fatalf("k=0 should return no paths, got %v", paths)
	}
}
