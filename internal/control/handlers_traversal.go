package control

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/netsim-dev/netsim/internal/traversal"
)

// traversalRequest carries the union of every parameter any kernel
// algorithm needs; a given algorithm reads only the fields it uses.
type traversalRequest struct {
	Src          string               `json:"src"`
	Dst          string               `json:"dst"`
	Dests        []string             `json:"dests,omitempty"`
	K            int                  `json:"k,omitempty"`
	MaxDepth     int                  `json:"max_depth,omitempty"`
	MinBandwidth int                  `json:"min_bandwidth,omitempty"`
	Node         string               `json:"node,omitempty"`
	Incoming     string               `json:"incoming_neighbor,omitempty"`
	AllNodes     []string             `json:"all_nodes,omitempty"`
	Commodities  []traversal.Commodity `json:"commodities,omitempty"`
}

var errUnknownAlgorithm = errors.New("unknown traversal algorithm")

// handleTraversal dispatches POST /api/traversal/{algorithm} onto the
// matching kernel function, built against a fresh Oracle over the
// live Store for every call.
func (s *Server) handleTraversal(w http.ResponseWriter, r *http.Request) {
	algo := chi.URLParam(r, "algorithm")
	var req traversalRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	o := storeOracle(s.store)

	var (
		result any
		err    error
	)
	switch algo {
	case "shortest-hops":
		path, ok, e := traversal.ShortestHops(o, req.Src, req.Dst)
		result, err = map[string]any{"path": path, "found": ok}, e
	case "shortest-delay":
		path, delay, ok, e := traversal.ShortestDelay(o, req.Src, req.Dst)
		result, err = map[string]any{"path": path, "delay": delay, "found": ok}, e
	case "bounded-dfs":
		path, ok, e := traversal.BoundedDFS(o, req.Src, req.Dst, req.MaxDepth)
		result, err = map[string]any{"path": path, "found": ok}, e
	case "multicast":
		paths, e := traversal.MulticastBFS(o, req.Src, req.Dests)
		result, err = paths, e
	case "ecmp-next-hops":
		hops, e := traversal.ECMPNextHops(o, req.Node, req.Dst)
		result, err = hops, e
	case "ecmp-k-paths":
		paths, e := traversal.ECMPKPaths(o, req.Src, req.Dst, req.K)
		result, err = paths, e
	case "constrained-shortest-path":
		path, ok, e := traversal.ConstrainedShortestPath(o, req.Src, req.Dst, req.MinBandwidth)
		result, err = map[string]any{"path": path, "found": ok}, e
	case "link-state-table":
		table, e := traversal.LinkStateTable(o, req.Src)
		result, err = table, e
	case "rpf-check":
		ok, e := traversal.IsRPF(o, req.Node, req.Incoming, req.Src)
		result, err = map[string]bool{"valid": ok}, e
	case "multipath-flow-aware":
		paths, e := traversal.MultipathFlowAware(o, req.Src, req.Dst, req.K)
		result, err = paths, e
	case "multi-commodity-flow":
		assignments, e := traversal.MultiCommodityFlow(o, req.AllNodes, req.Commodities, req.K)
		result, err = assignments, e
	default:
		err = errUnknownAlgorithm
	}

	if err != nil {
		if errors.Is(err, errUnknownAlgorithm) {
			s.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}
