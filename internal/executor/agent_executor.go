package executor

import (
	"context"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/rs/zerolog"
)

// StrategyRunner runs every configured substring strategy
type StrategyRunner interface {
	Run(analysisCtx models.AnalysisContext) []models.StageResult
}

// Aggregator folds strategy results into the final analysis
type Aggregator interface {
	Aggregate(analysisCtx models.AnalysisContext, stages []models.StageResult) models.AnalysisResult
}

type Executor struct {
	strategyRunner StrategyRunner
	aggregator     Aggregator
	logger         *zerolog.Logger
}

func NewExecutor(
	strategyRunner StrategyRunner,
	aggregator Aggregator,
	logger *zerolog.Logger,
) *Executor {
	return &Executor{
		strategyRunner: strategyRunner,
		aggregator:     aggregator,
		logger:         logger,
	}
}

func (e *Executor) Execute(ctx context.Context, analysisCtx models.AnalysisContext) models.AnalysisResult {
	id := analysisCtx.RequestID
	e.logger.Debug().Str("requestID", id).Int("input_bytes", len(analysisCtx.Input)).Msg("starting analysis")

	if err := ctx.Err(); err != nil {
		e.logger.Warn().Err(err).Str("requestID", id).Msg("analysis cancelled")
		return models.AnalysisResult{
			ID:       id,
			Input:    analysisCtx.Input,
			Expected: analysisCtx.Expected,
			Stages:   []models.StageResult{},
			Verdict:  models.VerdictFail,
			Error:    err.Error(),
		}
	}

	stageResults := e.strategyRunner.Run(analysisCtx)

	finalResult := e.aggregator.Aggregate(analysisCtx, stageResults)
	e.logger.
		Info().
		Str("requestID", id).
		Int("length", finalResult.Length).
		Str("verdict", string(finalResult.Verdict)).
		Msg("analysis complete")
	return finalResult
}
