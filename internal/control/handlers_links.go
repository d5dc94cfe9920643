package control

import "net/http"

type linkRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Connect(req.A, req.B); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Disconnect(req.A, req.B); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type linkAttrRequest struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Delay int     `json:"delay,omitempty"`
	Cap   int     `json:"bandwidth,omitempty"`
	Loss  float64 `json:"loss,omitempty"`
}

func (s *Server) handleSetDelay(w http.ResponseWriter, r *http.Request) {
	var req linkAttrRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.SetLinkDelay(req.A, req.B, req.Delay); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetBandwidth(w http.ResponseWriter, r *http.Request) {
	var req linkAttrRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.SetBandwidth(req.A, req.B, req.Cap); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetLoss(w http.ResponseWriter, r *http.Request) {
	var req linkAttrRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.SetPacketLoss(req.A, req.B, req.Loss); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type firewallRequest struct {
	Src      string `json:"src"`
	Dst      string `json:"dst"`
	Protocol string `json:"protocol"`
	Allow    bool   `json:"allow"`
}

func (s *Server) handleAddFirewallRule(w http.ResponseWriter, r *http.Request) {
	var req firewallRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.store.AddFirewallRule(req.Src, req.Dst, req.Protocol, req.Allow)
	w.WriteHeader(http.StatusNoContent)
}
