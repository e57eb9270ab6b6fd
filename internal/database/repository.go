package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("analysis result not found")

const schema = `
CREATE TABLE IF NOT EXISTS analysis_results (
	id         TEXT PRIMARY KEY,
	input      TEXT NOT NULL,
	length     INTEGER NOT NULL,
	substring  TEXT NOT NULL,
	expected   INTEGER,
	verdict    TEXT NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	stages     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create analysis_results table: %w", err)
	}
	return nil
}

// SaveResult stores a result, replacing any earlier result with the same id.
func (db *DB) SaveResult(ctx context.Context, result models.AnalysisResult) error {
	stages, err := json.Marshal(result.Stages)
	if err != nil {
		return fmt.Errorf("failed to encode stages for %s: %w", result.ID, err)
	}

	query := `
	INSERT INTO analysis_results (id, input, length, substring, expected, verdict, error, stages)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
	  input = EXCLUDED.input,
	  length = EXCLUDED.length,
	  substring = EXCLUDED.substring,
	  expected = EXCLUDED.expected,
	  verdict = EXCLUDED.verdict,
	  error = EXCLUDED.error,
	  stages = EXCLUDED.stages,
	  created_at = now()`

	_, err = db.conn.Exec(ctx, query,
		result.ID, result.Input, result.Length, result.Substring,
		result.Expected, string(result.Verdict), result.Error, stages)
	if err != nil {
		return fmt.Errorf("failed to save result %s: %w", result.ID, err)
	}

	log.Debug().Str("id", result.ID).Msg("Analysis result saved")
	return nil
}

func (db *DB) GetResult(ctx context.Context, id string) (*models.AnalysisResult, error) {
	query := `
	SELECT id, input, length, substring, expected, verdict, error, stages
	FROM analysis_results
	WHERE id = $1`

	var (
		result  models.AnalysisResult
		verdict string
		stages  []byte
	)

	err := db.conn.QueryRow(ctx, query, id).Scan(
		&result.ID, &result.Input, &result.Length, &result.Substring,
		&result.Expected, &verdict, &result.Error, &stages)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load result %s: %w", id, err)
	}

	result.Verdict = models.Verdict(verdict)
	if err := json.Unmarshal(stages, &result.Stages); err != nil {
		return nil, fmt.Errorf("failed to decode stages for %s: %w", id, err)
	}

	return &result, nil
}
