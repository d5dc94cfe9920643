package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/netsim-dev/netsim/internal/graph"
)

// PostgresPersister appends one row per saved snapshot to a table,
// and loads the most recently taken one. Used when --postgres-dsn is
// set, instead of FilePersister.
type PostgresPersister struct {
	pool *pgxpool.Pool
}

// NewPostgresPersister connects to dsn and ensures the backing table
// exists.
func NewPostgresPersister(ctx context.Context, dsn string) (*PostgresPersister, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("persistence: connect: %w", err)
	}
	p := &PostgresPersister{pool: pool}
	if err := p.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresPersister) ensureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS netsim_snapshots (
			id         uuid PRIMARY KEY,
			taken_at   timestamptz NOT NULL,
			document   jsonb NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("persistence: ensure schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (p *PostgresPersister) Close() { p.pool.Close() }

// SaveSnapshot inserts a new row carrying doc, timestamped now and
// identified by a fresh UUID.
func (p *PostgresPersister) SaveSnapshot(ctx context.Context, doc graph.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("persistence: marshal snapshot: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO netsim_snapshots (id, taken_at, document) VALUES ($1, $2, $3)`,
		uuid.New(), time.Now(), data,
	)
	if err != nil {
		return fmt.Errorf("persistence: insert snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the most recently saved Document, or an empty
// one if the table has no rows yet.
func (p *PostgresPersister) LoadSnapshot(ctx context.Context) (graph.Document, error) {
	var data []byte
	err := p.pool.QueryRow(ctx,
		`SELECT document FROM netsim_snapshots ORDER BY taken_at DESC LIMIT 1`,
	).Scan(&data)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return graph.Document{}, nil
		}
		return graph.Document{}, fmt.Errorf("persistence: query snapshot: %w", err)
	}
	var doc graph.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return graph.Document{}, fmt.Errorf("persistence: unmarshal snapshot: %w", err)
	}
	return doc, nil
}
