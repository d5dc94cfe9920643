package control

import (
	"net/http"

	"github.com/netsim-dev/netsim/internal/scenario"
)

// handleRunScenario decodes a full Scenario document and runs it
// against the server's own Store and simulation clock, so a scenario
// run is observable on /ws and /metrics exactly like any other
// control-surface mutation.
func (s *Server) handleRunScenario(w http.ResponseWriter, r *http.Request) {
	var sc scenario.Scenario
	if err := s.decode(r, &sc); err != nil {
		s.writeError(w, err)
		return
	}
	result, err := scenario.Run(s.store, s.sim, sc)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

type advanceTimeRequest struct {
	DeltaMs int `json:"delta_ms"`
}

func (s *Server) handleAdvanceTime(w http.ResponseWriter, r *http.Request) {
	var req advanceTimeRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	delivered, err := s.sim.AdvanceTime(req.DeltaMs)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"cursor":    s.sim.Cursor(),
		"delivered": delivered,
	})
}
