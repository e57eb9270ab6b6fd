package aggregator

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/rs/zerolog"
)

type Aggregator struct {
	logger *zerolog.Logger
}

func NewAggregator(logger *zerolog.Logger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// Aggregate folds strategy results into one answer. The first active stage
// is the reference; any disagreement sends the result to review.
func (a *Aggregator) Aggregate(analysisCtx models.AnalysisContext, stages []models.StageResult) models.AnalysisResult {
	result := models.AnalysisResult{
		ID:       analysisCtx.RequestID,
		Input:    analysisCtx.Input,
		Expected: analysisCtx.Expected,
		Stages:   stages,
	}

	var active []models.StageResult
	for _, stage := range stages {
		if !stage.Skipped {
			active = append(active, stage)
		}
	}

	if len(active) == 0 {
		result.Verdict = models.VerdictFail
		result.Error = "no strategy produced a result"
		return result
	}

	result.Length = active[0].Length
	for _, stage := range active {
		if stage.Window != nil {
			result.Substring = stage.Window.Slice(analysisCtx.Input)
			break
		}
	}

	for _, stage := range active[1:] {
		if stage.Length != result.Length {
			result.Verdict = models.VerdictReview
			result.Error = fmt.Sprintf("strategy %s reported %d, %s reported %d",
				active[0].Name, result.Length, stage.Name, stage.Length)
			a.logger.
				Warn().
				Str("id", result.ID).
				Str("reason", result.Error).
				Msg("strategies disagree")
			return result
		}
	}

	result.Verdict = a.calculateVerdict(result.Length, analysisCtx.Expected)

	a.logger.
		Info().
		Str("id", result.ID).
		Int("length", result.Length).
		Str("verdict", string(result.Verdict)).
		Msg("aggregation complete")
	return result
}

func (a *Aggregator) calculateVerdict(length int, expected *int) models.Verdict {
	if expected == nil {
		return models.VerdictComputed
	}
	if *expected == length {
		return models.VerdictPass
	}
	return models.VerdictFail
}
