package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/batch"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var errCasesFailed = errors.New("some cases did not pass")

// Runs every configured case once and prints one report line per case.
func main() {
	format := flag.String("format", batch.FormatText, "Output format. Supported formats: 'text', 'jsonl', 'summary'")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.NewConsole(cfg.LogLevel)
	lg := log.Logger

	if err := run(context.Background(), cfg, *format, &lg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Demonstration failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *setup.Config, format string, lg *zerolog.Logger, out io.Writer) error {
	deps, err := setup.Wire(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("failed to wire dependencies: %w", err)
	}
	defer deps.Close()

	writer, err := batch.NewWriter(out, format, lg)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}

	start := time.Now()
	for _, c := range deps.Cases.Cases {
		result := deps.Executor.Execute(ctx, models.NewAnalysisContext(c.Request()))
		if err := writer.Write(result); err != nil {
			return fmt.Errorf("failed to write result for %s: %w", c.ID, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	summary := writer.Summary()
	lg.Info().
		Int("total", summary.Total).
		Int("passed", summary.Passed).
		Int("failed", summary.Failed).
		Dur("duration", time.Since(start)).
		Msg("Demonstration complete")

	if !summary.OK() {
		return fmt.Errorf("%w: %d failed, %d need review", errCasesFailed, summary.Failed, summary.Review)
	}
	return nil
}
