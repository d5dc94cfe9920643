package control

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/netsim-dev/netsim/internal/events"
	"github.com/netsim-dev/netsim/internal/graph"
	"github.com/netsim-dev/netsim/internal/simstate"
)

// Server is the HTTP control surface wrapping one Graph Store, one
// simulation clock, and the event bus that feeds /ws.
type Server struct {
	router *chi.Mux
	store  *graph.Store
	sim    *simstate.State
	bus    *events.Bus
	logger *slog.Logger
	srv    *http.Server
}

// New builds a Server bound to the given core collaborators and
// registers every route. addr is the listen address (e.g. ":8080").
func New(addr string, store *graph.Store, sim *simstate.State, bus *events.Bus, logger *slog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		store:  store,
		sim:    sim,
		bus:    bus,
		logger: logger,
	}
	s.routes()
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api/nodes", func(r chi.Router) {
		r.Post("/", s.handleAddNode)
		r.Get("/", s.handleListNodes)
		r.Get("/{name}", s.handleGetNode)
		r.Delete("/{name}", s.handleRemoveNode)
		r.Post("/{name}/fail", s.handleFailNode)
		r.Post("/{name}/recover", s.handleRecoverNode)
		r.Post("/{name}/vlan", s.handleAssignVLAN)
		r.Post("/{name}/battery/drain", s.handleDrainBattery)
		r.Post("/{name}/cloud/scale-up", s.handleScaleUp)
		r.Post("/{name}/cloud/scale-down", s.handleScaleDown)
	})

	s.router.Route("/api/links", func(r chi.Router) {
		r.Post("/", s.handleConnect)
		r.Delete("/", s.handleDisconnect)
		r.Put("/delay", s.handleSetDelay)
		r.Put("/bandwidth", s.handleSetBandwidth)
		r.Put("/loss", s.handleSetLoss)
	})

	s.router.Route("/api/firewall", func(r chi.Router) {
		r.Post("/", s.handleAddFirewallRule)
	})

	s.router.Post("/api/traversal/{algorithm}", s.handleTraversal)

	s.router.Route("/api/snapshot", func(r chi.Router) {
		r.Get("/", s.handleExportSnapshot)
		r.Put("/", s.handleImportSnapshot)
	})

	s.router.Post("/api/scenario/run", s.handleRunScenario)
	s.router.Post("/api/time/advance", s.handleAdvanceTime)

	s.router.Get("/metrics", promhttp.Handler().ServeHTTP)
	s.router.Get("/ws", s.handleWebSocket)
}

// Handler returns the server's router, for tests that want to drive
// it with httptest.NewServer instead of binding a real port.
func (s *Server) Handler() http.Handler { return s.router }

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("starting control surface", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func (s *Server) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

