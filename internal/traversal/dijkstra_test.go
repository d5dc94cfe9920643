package traversal_test

import (
	"reflect"
	"testing"

	"github.com/netsim-dev/netsim/internal/traversal"
)

func TestShortestDelay_SumsToDijkstraDistance(t *testing.T) {
	f := linearFixture()
	path, total, ok, err := traversal.ShortestDelay(f.oracle(), "A", "E")
	if err != nil || !ok {
		t.Fatalf("err=%v ok=%v", err, ok)
	}
	if total != 40 {
		t.Fatalf("expected total delay 40, got %d", total)
	}
	if !reflect.DeepEqual(path, []string{"A", "B", "C", "D", "E"}) {
		t.Fatalf("unexpected path: %v", path)
	}
}

func TestShortestDelay_PrefersLowerDelayBranch(t *testing.T) {
	f := newFixture()
	f.link("A", "B", 1, 10)
	f.link("B", "D", 1, 10)
	f.link("A", "C", 100, 10)
	f.link("C", "D", 1, 10)
	path, total, ok, err := traversal.ShortestDelay(f.oracle(), "A", "D")
	if err != nil || !ok {
		t.Fatalf("err=%v ok=%v", err, ok)
	}
	if total != 2 {
		t.Fatalf("expected delay 2 via A-B-D, got %d (%v)", total, path)
	}
}

func TestShortestDelay_RejectsNegativeWeight(t *testing.T) {
	f := newFixture()
	f.link("A", "B", -1, 10)
	_, _, _, err := traversal.ShortestDelay(f.oracle(), "A", "B")
	if err == nil {
		t.Fatalf("expected an error for negative edge weight")
	}
}

func TestConstrainedShortestPath_RespectsMinBandwidth(t *testing.T) {
	f := diamondFixture() // A-B-D at bw 100, A-C-D at bw 50
	path, ok, err := traversal.ConstrainedShortestPath(f.oracle(), "A", "D", 80)
	if err != nil || !ok {
		t.Fatalf("err=%v ok=%v", err, ok)
	}
	want := map[string]bool{"A": true, "B": true, "D": true}
	for _, n := range path {
		if !want[n] {
			t.Fatalf("path %v uses a low-bandwidth edge", path)
		}
	}
}

func TestConstrainedShortestPath_NoPathUnderConstraint(t *testing.T) {
	f := diamondFixture()
	_, ok, err := traversal.ConstrainedShortestPath(f.oracle(), "A", "D", 1000)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("expected no-path when every edge is below minBandwidth")
	}
}
