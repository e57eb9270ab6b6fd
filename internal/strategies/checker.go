package strategies

import (
	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
)

const (
	PositionMap  = "position-map"
	ShrinkingSet = "shrinking-set"
	ByteTable    = "byte-table"
)

type Checker interface {
	Check(analysisContext models.AnalysisContext) models.StageResult
}
