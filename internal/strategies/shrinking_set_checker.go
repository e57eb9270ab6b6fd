package strategies

import (
	"time"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/substring"
)

type ShrinkingSetChecker struct {
}

func NewShrinkingSetChecker() *ShrinkingSetChecker {
	return &ShrinkingSetChecker{}
}

func (c *ShrinkingSetChecker) Check(analysisContext models.AnalysisContext) models.StageResult {
	now := time.Now()
	length := substring.LongestUniqueShrinking(analysisContext.Input)

	return models.StageResult{
		Name:     ShrinkingSet,
		Length:   length,
		Reason:   "Window shrunk from the left on every repeat",
		Duration: time.Since(now),
	}
}
