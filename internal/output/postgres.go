package output

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/toyfactory/heijunkasim/internal/models"
)

// ResultStore persists the latest simulation result. Only one row lives in
// the table: each run overwrites the previous result in full, matching the
// planner's replace-don't-merge output contract.
type ResultStore struct {
	pool *pgxpool.Pool
}

func NewResultStore(config models.DatabaseConfig) (*ResultStore, error) {
	pool, err := pgxpool.New(context.Background(), config.ConnString())
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return &ResultStore{pool: pool}, nil
}

func (s *ResultStore) Save(ctx context.Context, result *models.SimulationResult, explanation string, anchor time.Time) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode simulation result: %w", err)
	}

	query := `
        INSERT INTO simulation_results (id, anchor_date, result, explanation, created_at)
        VALUES (1, $1, $2, $3, NOW())
        ON CONFLICT (id) DO UPDATE
        SET anchor_date = EXCLUDED.anchor_date,
            result = EXCLUDED.result,
            explanation = EXCLUDED.explanation,
            created_at = EXCLUDED.created_at`

	_, err = s.pool.Exec(ctx, query, anchor, payload, explanation)
	if err != nil {
		return fmt.Errorf("failed to store simulation result: %w", err)
	}
	return nil
}

// Load returns the stored result from the last run, or nil if none exists.
func (s *ResultStore) Load(ctx context.Context) (*models.SimulationResult, string, error) {
	var payload []byte
	var explanation string
	query := `SELECT result, explanation FROM simulation_results WHERE id = 1`
	if err := s.pool.QueryRow(ctx, query).Scan(&payload, &explanation); err != nil {
		return nil, "", fmt.Errorf("failed to load simulation result: %w", err)
	}

	var result models.SimulationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, "", fmt.Errorf("failed to decode simulation result: %w", err)
	}
	return &result, explanation, nil
}

func (s *ResultStore) Close() {
	s.pool.Close()
}
