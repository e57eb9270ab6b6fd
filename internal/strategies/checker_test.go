package strategies

import (
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
)

func TestPositionMapChecker(t *testing.T) {
	checker := NewPositionMapChecker()

	tests := []struct {
		name       string
		input      string
		wantLength int
		wantStart  int
		wantEnd    int
	}{
		{name: "empty input", input: "", wantLength: 0, wantStart: 0, wantEnd: 0},
		{name: "repeated abc", input: "abcabcbb", wantLength: 3, wantStart: 0, wantEnd: 3},
		{name: "middle run", input: "pwwkew", wantLength: 3, wantStart: 2, wantEnd: 5},
		{name: "stale repeat", input: "abba", wantLength: 2, wantStart: 0, wantEnd: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.Check(models.AnalysisContext{Input: tt.input})
			if got.Name != PositionMap {
				t.Errorf("Name: %q, want %q", got.Name, PositionMap)
			}
			if got.Length != tt.wantLength {
				t.Errorf("Length: %d, want %d", got.Length, tt.wantLength)
			}
			if got.Window == nil {
				t.Fatal("Window should be reported")
			}
			if got.Window.Start != tt.wantStart || got.Window.End != tt.wantEnd {
				t.Errorf("Window: [%d, %d), want [%d, %d)", got.Window.Start, got.Window.End, tt.wantStart, tt.wantEnd)
			}
			if got.Skipped {
				t.Error("position-map should never skip")
			}
		})
	}
}

func TestShrinkingSetChecker(t *testing.T) {
	checker := NewShrinkingSetChecker()

	for input, want := range map[string]int{"": 0, "bbbbb": 1, "dvdf": 3, "日本日本語": 3} {
		got := checker.Check(models.AnalysisContext{Input: input})
		if got.Length != want {
			t.Errorf("input %q: Length %d, want %d", input, got.Length, want)
		}
		if got.Window != nil {
			t.Errorf("input %q: shrinking-set should not report a window", input)
		}
	}
}

func TestByteTableChecker(t *testing.T) {
	checker := NewByteTableChecker()

	tests := []struct {
		name        string
		input       string
		wantLength  int
		wantSkipped bool
		wantReason  string
	}{
		{name: "ascii", input: "abcabcbb", wantLength: 3, wantReason: "ASCII"},
		{name: "empty", input: "", wantLength: 0, wantReason: "ASCII"},
		{name: "non-ascii", input: "héllo", wantSkipped: true, wantReason: "non-ASCII"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.Check(models.AnalysisContext{Input: tt.input})
			if got.Skipped != tt.wantSkipped {
				t.Errorf("Skipped: %v, want %v", got.Skipped, tt.wantSkipped)
			}
			if got.Length != tt.wantLength {
				t.Errorf("Length: %d, want %d", got.Length, tt.wantLength)
			}
			if !strings.Contains(got.Reason, tt.wantReason) {
				t.Errorf("Reason: %q, want substring %q", got.Reason, tt.wantReason)
			}
		})
	}
}
