package strategies

import (
	"sync"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
)

type StageRunner struct {
	Checkers []Checker
}

func NewStageRunner(checkers []Checker) *StageRunner {
	return &StageRunner{
		Checkers: checkers,
	}
}

// Run executes every checker concurrently. Results keep the checker order.
func (r *StageRunner) Run(analysisContext models.AnalysisContext) []models.StageResult {
	results := make([]models.StageResult, len(r.Checkers))
	var wg sync.WaitGroup

	for i, checker := range r.Checkers {
		wg.Add(1)
		go func(i int, c Checker) {
			defer wg.Done()
			results[i] = c.Check(analysisContext)
		}(i, checker)
	}

	wg.Wait()
	return results
}
