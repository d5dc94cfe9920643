package control

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/netsim-dev/netsim/internal/graph"
)

type addNodeRequest struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Address string `json:"address"`
	Port    int    `json:"port,omitempty"`
	Battery int    `json:"battery,omitempty"`
}

func (s *Server) handleAddNode(w http.ResponseWriter, r *http.Request) {
	var req addNodeRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	opts := []graph.NodeOption{}
	if req.Port != 0 {
		opts = append(opts, graph.WithPort(req.Port))
	}
	if req.Battery != 0 {
		opts = append(opts, graph.WithBattery(req.Battery))
	}
	n, err := s.store.AddNode(req.Name, graph.Kind(req.Kind), req.Address, opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, n)
}

func (s *Server) handleListNodes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.AllNodes())
}

func (s *Server) handleGetNode(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	n, err := s.store.GetNode(name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleRemoveNode(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.RemoveNode(name); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFailNode(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.FailNode(name); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecoverNode(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.Recover(name); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type vlanRequest struct {
	Tag int `json:"tag"`
}

func (s *Server) handleAssignVLAN(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	var req vlanRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.AssignVLAN(name, req.Tag); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type drainRequest struct {
	Pct int `json:"pct"`
}

func (s *Server) handleDrainBattery(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	var req drainRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	level, err := s.store.DrainBattery(name, req.Pct)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"battery": level})
}

func (s *Server) handleScaleUp(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	instance, err := s.store.ScaleUp(name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"instance": instance})
}

func (s *Server) handleScaleDown(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.ScaleDown(name); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
