// Command netsimd runs the network-simulation control surface: a
// Graph Store, Traversal Kernel, Simulation State clock, Scenario
// Engine, and Event Publisher behind a chi HTTP API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/netsim-dev/netsim/internal/config"
	"github.com/netsim-dev/netsim/internal/control"
	"github.com/netsim-dev/netsim/internal/events"
	"github.com/netsim-dev/netsim/internal/graph"
	"github.com/netsim-dev/netsim/internal/logging"
	"github.com/netsim-dev/netsim/internal/persistence"
	"github.com/netsim-dev/netsim/internal/simstate"
)

func main() {
	if err := run(); err != nil {
		slog.Error("netsimd exited with an error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel)

	persister, err := newPersister(cfg)
	if err != nil {
		return err
	}

	bus := events.NewBus(prometheus.DefaultRegisterer)
	store := graph.New(graph.WithPublisher(bus))
	sim := simstate.New(store, cfg.Seed, simstate.WithPublisher(bus))

	if persister != nil {
		doc, err := persister.LoadSnapshot(context.Background())
		if err != nil {
			return err
		}
		if len(doc.Nodes) > 0 {
			if err := store.ImportSnapshot(doc); err != nil {
				return err
			}
			logger.Info("restored snapshot at startup", "nodes", len(doc.Nodes))
		}
	}

	server := control.New(cfg.ListenAddr, store, sim, bus, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if persister != nil {
		if err := persister.SaveSnapshot(shutdownCtx, store.ExportSnapshot()); err != nil {
			logger.Error("failed to persist snapshot on shutdown", "error", err)
		}
	}
	return server.Shutdown(shutdownCtx)
}

func newPersister(cfg config.Config) (persistence.Persister, error) {
	switch {
	case cfg.PostgresDSN != "":
		return persistence.NewPostgresPersister(context.Background(), cfg.PostgresDSN)
	case cfg.SnapshotFile != "":
		return persistence.NewFilePersister(cfg.SnapshotFile), nil
	default:
		return nil, nil
	}
}
