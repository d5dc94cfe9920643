package graph

import "testing"

func TestSnapshot_RoundTripPreservesObservableState(t *testing.T) {
	s := New()
	mustAdd(t, s, "A", "B", "C")
	if err := s.Connect("A", "B"); err != nil {
		t.Fatal(err)
	}
	if err := s.Connect("B", "C"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetLinkDelay("A", "B", 10); err != nil {
		t.Fatal(err)
	}
	if err := s.SetBandwidth("A", "B", 50); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPacketLoss("B", "C", 0.25); err != nil {
		t.Fatal(err)
	}
	if err := s.AssignVLAN("A", 7); err != nil {
		t.Fatal(err)
	}

	doc := s.ExportSnapshot()

	s2 := New()
	if err := s2.ImportSnapshot(doc); err != nil {
		t.Fatal(err)
	}

	if !sameSet(s.AllNodes(), s2.AllNodes()) {
		t.Fatalf("node sets differ: %v vs %v", s.AllNodes(), s2.AllNodes())
	}
	for _, n := range s.AllNodes() {
		a, _ := s.GetNeighbors(n)
		b, _ := s2.GetNeighbors(n)
		if !sameSet(a, b) {
			t.Fatalf("adjacency of %q differs: %v vs %v", n, a, b)
		}
	}
	delay, err := s2.GetLinkDelay("A", "B")
	if err != nil || delay != 10 {
		t.Fatalf("delay not preserved: %d, %v", delay, err)
	}
	bw, err := s2.GetBandwidth("A", "B")
	if err != nil || bw != 50 {
		t.Fatalf("bandwidth not preserved: %d, %v", bw, err)
	}
	loss, err := s2.GetPacketLoss("B", "C")
	if err != nil || loss != 0.25 {
		t.Fatalf("loss not preserved: %v, %v", loss, err)
	}
	na, err := s2.GetNode("A")
	if err != nil || na.VLAN == nil || *na.VLAN != 7 {
		t.Fatalf("VLAN not preserved: %+v, %v", na, err)
	}
}

func TestSnapshot_ImportRejectsDanglingReference(t *testing.T) {
	s := New()
	doc := Document{
		Nodes:       []NodeDoc{{Name: "A", Kind: "host"}},
		Connections: [][2]string{{"A", "ghost"}},
	}
	if err := s.ImportSnapshot(doc); err == nil {
		t.Fatalf("expected import to fail atomically on dangling reference")
	}
	if s.HasNode("A") {
		t.Fatalf("failed import must not leave partial state")
	}
}

func TestSnapshot_ImportIsDestructive(t *testing.T) {
	s := New()
	mustAdd(t, s, "Stale")
	doc := Document{Nodes: []NodeDoc{{Name: "Fresh", Kind: "host"}}}
	if err := s.ImportSnapshot(doc); err != nil {
		t.Fatal(err)
	}
	if s.HasNode("Stale") {
		t.Fatalf("import should clear prior state before reconstructing")
	}
	if !s.HasNode("Fresh") {
		t.Fatalf("import should construct the new state")
	}
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, x := range a {
		set[x] = true
	}
	for _, x := range b {
		if !set[x] {
			return false
		}
	}
	return true
}
