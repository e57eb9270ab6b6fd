package strategies

import (
	"time"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/substring"
)

// ByteTableChecker scans raw bytes with a 256-entry last-index table.
// Multi-byte characters would be split, so non-ASCII input is skipped.
type ByteTableChecker struct {
}

func NewByteTableChecker() *ByteTableChecker {
	return &ByteTableChecker{}
}

// Check reports the byte-level length, or a skipped stage for non-ASCII input.
func (c *ByteTableChecker) Check(analysisContext models.AnalysisContext) models.StageResult {
	result := models.StageResult{
		Name: ByteTable,
	}

	now := time.Now()
	if !substring.IsASCII(analysisContext.Input) {
		result.Skipped = true
		result.Reason = "Input contains non-ASCII characters"
		result.Duration = time.Since(now)
		return result
	}

	result.Length = substring.LongestUniqueBytes([]byte(analysisContext.Input))
	result.Reason = "ASCII input scanned byte by byte"
	result.Duration = time.Since(now)
	return result
}
