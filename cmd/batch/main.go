package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/batch"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var errValidation = errors.New("input validation failed")

type options struct {
	input           string
	output          string
	format          string
	workers         int
	continueOnError bool
	dryRun          bool
}

func main() {
	var opts options
	flag.StringVar(&opts.input, "input", "", "Input JSONL file relative path, '-' for stdin")
	flag.StringVar(&opts.output, "output", "", "Output file relative path")
	flag.StringVar(&opts.format, "format", batch.FormatJSONL, "Output file format. Supported formats: 'jsonl', 'summary', 'text'")
	flag.IntVar(&opts.workers, "workers", 0, "Concurrent workers (defaults to WORKERS)")
	flag.BoolVar(&opts.continueOnError, "continue-on-error", true, "Continue on write failures")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "Validate input without analysing")

	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := setup.LoadConfig()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.NewConsole(cfg.LogLevel)
	lg := log.Logger

	ctx, cancel := setupGracefulShutdown()
	err := run(ctx, opts, cfg, &lg, os.Stdin, os.Stdout)
	cancel()

	if err != nil {
		log.Error().Err(err).Msg("Batch processing failed")
		os.Exit(1)
	}
}

// run returns instead of exiting so every deferred close and the writer
// flush happen on error paths too.
func run(ctx context.Context, opts options, cfg *setup.Config, lg *zerolog.Logger, stdin io.Reader, stdout io.Writer) error {
	startTime := time.Now()

	if opts.input == "" {
		return errors.New("required flag -input not provided")
	}
	if opts.workers <= 0 {
		opts.workers = cfg.Workers
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("failed to wire dependencies: %w", err)
	}
	defer deps.Close()

	// Open input file
	inputFile := stdin
	if opts.input == "-" {
		lg.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(opts.input)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		inputFile = f
		lg.Info().Str("file", opts.input).Msg("Reading input file")
	}

	reader := batch.NewReader(inputFile, deps.Logger)

	var records []batch.InputRecord
	for record := range reader.ReadAll(ctx) {
		records = append(records, record)
	}

	lg.Info().Int("total", len(records)).Msg("Input file parsed")

	if opts.dryRun {
		return validate(records, lg)
	}

	// Open output file
	outputFile := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		outputFile = f
		lg.Info().Str("file", opts.output).Msg("Writing to output file")
	}

	writer, err := batch.NewWriter(outputFile, opts.format, deps.Logger)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}

	processor := batch.NewProcessor(deps.Executor, opts.workers, deps.Logger)
	results := processor.Process(ctx, records)

	var stopErr error
	writeErrors := 0
	for result := range results {
		if deps.Store != nil {
			if err := deps.Store.SaveResult(ctx, result); err != nil {
				lg.Error().Err(err).Str("id", result.ID).Msg("Failed to store result")
			}
		}

		if err := writer.Write(result); err != nil {
			lg.Error().Err(err).Str("id", result.ID).Msg("Failed to write result")
			writeErrors++

			if !opts.continueOnError {
				stopErr = fmt.Errorf("stopping after write error: %w", err)
				cancel()
				break
			}
		}
	}

	// Let the workers exit once cancelled.
	for range results {
	}

	if err := writer.Close(); err != nil {
		lg.Error().Err(err).Msg("Failed to flush output")
		if stopErr == nil {
			stopErr = fmt.Errorf("failed to flush output: %w", err)
		}
	}

	summary := writer.Summary()
	lg.Info().
		Int("total", summary.Total).
		Int("passed", summary.Passed).
		Int("failed", summary.Failed).
		Int("review", summary.Review).
		Int("computed", summary.Computed).
		Int("write_errors", writeErrors).
		Dur("duration", time.Since(startTime)).
		Msg("Batch processing complete")

	return stopErr
}

func setupGracefulShutdown() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			log.Warn().Msg("Received interrupt signal, finishing current work...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func validate(records []batch.InputRecord, lg *zerolog.Logger) error {
	errorCount := 0
	for _, record := range records {
		if record.Error != nil {
			lg.Error().
				Int("line", record.LineNumber).
				Err(record.Error).
				Msg("Validation error")
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%w: %d invalid records", errValidation, errorCount)
	}

	lg.Info().Msg("Validation successful")
	return nil
}
