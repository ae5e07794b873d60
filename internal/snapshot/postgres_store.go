package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"streetkart/internal/repository"
)

// postgresStore implements Store on a single-row Postgres table.
type postgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a Postgres-backed snapshot store and ensures
// its schema exists.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) (Store, error) {
	s := &postgresStore{
		pool:   pool,
		logger: logger.With().Str("snapshot", "postgres").Logger(),
	}

	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id INT PRIMARY KEY DEFAULT 1,
			doc JSONB NOT NULL,
			saved_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT single_row CHECK (id = 1)
		)
	`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to ensure snapshot schema: %w", err)
	}

	return s, nil
}

// Save persists a snapshot, replacing the previous one.
func (s *postgresStore) Save(ctx context.Context, snap *repository.Snapshot) error {
	doc, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := `
		INSERT INTO snapshots (id, doc, saved_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, saved_at = now()
	`

	if _, err := s.pool.Exec(ctx, query, doc); err != nil {
		s.logger.Error().Err(err).Msg("failed to save snapshot")
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	s.logger.Debug().Int("bytes", len(doc)).Msg("snapshot saved")
	return nil
}

// Load returns the most recent snapshot, or nil when none exists.
func (s *postgresStore) Load(ctx context.Context) (*repository.Snapshot, error) {
	query := `SELECT doc FROM snapshots WHERE id = 1`

	var doc []byte
	err := s.pool.QueryRow(ctx, query).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			s.logger.Debug().Msg("no snapshot stored")
			return nil, nil
		}
		s.logger.Error().Err(err).Msg("failed to load snapshot")
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap repository.Snapshot
	if err := json.Unmarshal(doc, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	s.logger.Debug().Msg("snapshot loaded")
	return &snap, nil
}

// Close releases resources held by the store.
func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}
