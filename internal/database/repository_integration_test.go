package database

import (
	"context"
	"errors"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
)

// Custom flag for running integration tests against a real PostgreSQL
var runIntegration = flag.Bool("integration", false, "Run integration tests against a real PostgreSQL")

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	if !*runIntegration {
		t.Skip("Skipping integration test - use 'go test -integration' to run against PostgreSQL")
	}

	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: No .env file found, using environment variables")
	}

	cfg := Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Database: os.Getenv("DB_NAME"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}
	if cfg.Host == "" {
		t.Fatal("DB_HOST must be set for integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(db.Close)

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping() failed: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}
	return db
}

func TestPostgres_ResultRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	id := "integration-" + time.Now().Format("20060102150405.000000000")
	t.Cleanup(func() {
		db.Pool.Exec(context.Background(), "DELETE FROM analysis_results WHERE id = $1", id)
	})

	// NULL expected, JSONB stages
	if err := db.SaveResult(ctx, sampleResult(id, "pwwkew", nil)); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	got, err := db.GetResult(ctx, id)
	if err != nil {
		t.Fatalf("GetResult() failed: %v", err)
	}
	if got.Expected != nil {
		t.Errorf("Expected NULL expectation, got %d", *got.Expected)
	}
	if got.Length != 3 || got.Substring != "wke" {
		t.Errorf("Unexpected result: length %d substring %q", got.Length, got.Substring)
	}
	if len(got.Stages) != 2 || got.Stages[0].Window == nil {
		t.Errorf("Stages not decoded: %+v", got.Stages)
	}

	// Second save replaces the first
	expected := 3
	updated := sampleResult(id, "pwwkew", &expected)
	updated.Verdict = "pass"
	if err := db.SaveResult(ctx, updated); err != nil {
		t.Fatalf("SaveResult() upsert failed: %v", err)
	}
	got, err = db.GetResult(ctx, id)
	if err != nil {
		t.Fatalf("GetResult() failed: %v", err)
	}
	if got.Expected == nil || *got.Expected != 3 || got.Verdict != "pass" {
		t.Errorf("Upsert not applied: %+v", got)
	}

	if _, err := db.GetResult(ctx, id+"-missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
