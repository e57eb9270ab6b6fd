package batch

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Executor analyses a single request
type Executor interface {
	Execute(ctx context.Context, analysisCtx models.AnalysisContext) models.AnalysisResult
}

type Processor struct {
	executor Executor
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(executor Executor, workers int, logger *zerolog.Logger) *Processor {
	if workers <= 0 {
		workers = 1
	}
	return &Processor{
		executor: executor,
		workers:  workers,
		logger:   logger,
	}
}

// Process analyses records with a bounded worker pool. Results arrive in
// completion order; records that failed to parse become failed results.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.AnalysisResult {
	out := make(chan models.AnalysisResult, p.workers)

	go func() {
		defer close(out)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)

		for _, record := range records {
			if gctx.Err() != nil {
				p.logger.Warn().Int("line", record.LineNumber).Msg("Processing cancelled")
				break
			}

			g.Go(func() error {
				result := p.process(gctx, record)
				select {
				case out <- result:
				case <-gctx.Done():
				}
				return nil
			})
		}

		_ = g.Wait()
	}()

	return out
}

func (p *Processor) process(ctx context.Context, record InputRecord) models.AnalysisResult {
	if record.Error != nil {
		return models.AnalysisResult{
			ID:      fmt.Sprintf("line-%d", record.LineNumber),
			Stages:  []models.StageResult{},
			Verdict: models.VerdictFail,
			Error:   record.Error.Error(),
		}
	}

	return p.executor.Execute(ctx, models.NewAnalysisContext(record.Request))
}
