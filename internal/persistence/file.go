package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/netsim-dev/netsim/internal/graph"
)

// FilePersister stores one Document as JSON at Path. It is the
// default persister used by --snapshot-file.
type FilePersister struct {
	Path string
}

// NewFilePersister constructs a FilePersister writing to path.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{Path: path}
}

// SaveSnapshot writes doc to Path, overwriting any existing file.
func (f *FilePersister) SaveSnapshot(_ context.Context, doc graph.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("persistence: marshal snapshot: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("persistence: write %s: %w", f.Path, err)
	}
	return nil
}

// LoadSnapshot reads and decodes the Document at Path. A missing file
// is reported as an empty Document, not an error, so a daemon can
// start fresh the first time --snapshot-file is used.
func (f *FilePersister) LoadSnapshot(_ context.Context) (graph.Document, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return graph.Document{}, nil
	}
	if err != nil {
		return graph.Document{}, fmt.Errorf("persistence: read %s: %w", f.Path, err)
	}
	var doc graph.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return graph.Document{}, fmt.Errorf("persistence: unmarshal %s: %w", f.Path, err)
	}
	return doc, nil
}
