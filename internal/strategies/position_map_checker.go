package strategies

import (
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/substring"
)

type PositionMapChecker struct {
}

func NewPositionMapChecker() *PositionMapChecker {
	return &PositionMapChecker{}
}

// Check runs the single-pass sliding window with a last-seen position map and
// reports the earliest maximal window alongside its length.
func (c *PositionMapChecker) Check(analysisContext models.AnalysisContext) models.StageResult {
	now := time.Now()
	window := substring.LongestUniqueWindow(analysisContext.Input)

	return models.StageResult{
		Name:     PositionMap,
		Length:   window.Len(),
		Window:   &window,
		Reason:   fmt.Sprintf("Longest unique run spans runes [%d, %d)", window.Start, window.End),
		Duration: time.Since(now),
	}
}
