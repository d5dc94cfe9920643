package control

import (
	"net/http"

	"github.com/netsim-dev/netsim/internal/graph"
)

func (s *Server) handleExportSnapshot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.ExportSnapshot())
}

func (s *Server) handleImportSnapshot(w http.ResponseWriter, r *http.Request) {
	var doc graph.Document
	if err := s.decode(r, &doc); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.ImportSnapshot(doc); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
