package persistence_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/netsim-dev/netsim/internal/graph"
	"github.com/netsim-dev/netsim/internal/persistence"
)

func TestFilePersister_LoadMissingFileReturnsEmptyDocument(t *testing.T) {
	p := persistence.NewFilePersister(filepath.Join(t.TempDir(), "missing.json"))
	doc, err := p.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Nodes) != 0 {
		t.Fatalf("expected an empty document, got %+v", doc)
	}
}

func TestFilePersister_SaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	p := persistence.NewFilePersister(path)

	original := graph.Document{
		Nodes:       []graph.NodeDoc{{Name: "A", Address: "10.0.0.1", Kind: "host"}},
		Connections: [][2]string{},
	}
	if err := p.SaveSnapshot(context.Background(), original); err != nil {
		t.Fatal(err)
	}

	loaded, err := p.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Nodes) != 1 || loaded.Nodes[0].Name != "A" {
		t.Fatalf("round-trip mismatch: %+v", loaded)
	}
}
