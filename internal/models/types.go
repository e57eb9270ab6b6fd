package models

import (
	"time"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/substring"
)

type Verdict string

const (
	VerdictPass     Verdict = "pass"
	VerdictFail     Verdict = "fail"
	VerdictReview   Verdict = "review"
	VerdictComputed Verdict = "computed"
)

// Input message

type AnalysisRequest struct {
	CaseID   string `json:"case_id"`
	Input    string `json:"input"`
	Expected *int   `json:"expected,omitempty"`
}

// Normalized internal object
type AnalysisContext struct {
	RequestID string    `json:"request_id"`
	Input     string    `json:"input"`
	Expected  *int      `json:"expected,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// One strategy's output
type StageResult struct {
	Name     string            `json:"name"`
	Length   int               `json:"length"`
	Window   *substring.Window `json:"window,omitempty"`
	Skipped  bool              `json:"skipped,omitempty"`
	Reason   string            `json:"reason"`
	Duration time.Duration     `json:"duration_ns"`
}

// Final output returned by every surface
type AnalysisResult struct {
	ID        string        `json:"id"`
	Input     string        `json:"input"`
	Length    int           `json:"length"`
	Substring string        `json:"substring"`
	Expected  *int          `json:"expected,omitempty"`
	Stages    []StageResult `json:"stages"`
	Verdict   Verdict       `json:"verdict"`
	Error     string        `json:"error,omitempty"`
}

func NewAnalysisContext(req AnalysisRequest) AnalysisContext {
	return AnalysisContext{
		RequestID: req.CaseID,
		Input:     req.Input,
		Expected:  req.Expected,
		CreatedAt: time.Now(),
	}
}
