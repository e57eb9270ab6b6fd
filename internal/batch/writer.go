package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
	FormatText    = "text"
)

// Summary counts results by verdict. Errors counts results that carry an
// error other than a strategy disagreement, which Review already counts.
type Summary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Review   int `json:"review"`
	Computed int `json:"computed"`
	Errors   int `json:"errors"`
}

func (s *Summary) Add(result models.AnalysisResult) {
	s.Total++
	if result.Error != "" && result.Verdict != models.VerdictReview {
		s.Errors++
	}
	switch result.Verdict {
	case models.VerdictPass:
		s.Passed++
	case models.VerdictFail:
		s.Failed++
	case models.VerdictReview:
		s.Review++
	case models.VerdictComputed:
		s.Computed++
	}
}

// OK reports whether no result failed or needs review.
func (s *Summary) OK() bool {
	return s.Failed == 0 && s.Review == 0
}

type Writer struct {
	out     io.Writer
	format  string
	encoder *json.Encoder
	summary Summary
	logger  *zerolog.Logger
}

func NewWriter(out io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	switch format {
	case FormatJSONL, FormatSummary, FormatText:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	return &Writer{
		out:     out,
		format:  format,
		encoder: json.NewEncoder(out),
		logger:  logger,
	}, nil
}

func (w *Writer) Write(result models.AnalysisResult) error {
	w.summary.Add(result)

	switch w.format {
	case FormatJSONL:
		return w.encoder.Encode(result)
	case FormatText:
		_, err := fmt.Fprintln(w.out, FormatLine(result))
		return err
	}
	return nil
}

func (w *Writer) Summary() Summary {
	return w.summary
}

// Close flushes the summary for the summary format.
func (w *Writer) Close() error {
	w.logger.Debug().
		Int("total", w.summary.Total).
		Int("passed", w.summary.Passed).
		Int("failed", w.summary.Failed).
		Msg("Writer closed")

	if w.format != FormatSummary {
		return nil
	}

	w.encoder.SetIndent("", "  ")
	return w.encoder.Encode(w.summary)
}

// FormatLine renders one result as a console report line.
func FormatLine(result models.AnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Input: '%s' | Output: %d", result.Input, result.Length)

	if result.Expected != nil {
		fmt.Fprintf(&b, " | Expected: %d | Pass: %t", *result.Expected, result.Verdict == models.VerdictPass)
	}
	if result.Error != "" {
		fmt.Fprintf(&b, " | Error: %s", result.Error)
	}
	return b.String()
}
