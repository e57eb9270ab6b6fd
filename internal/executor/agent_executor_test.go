package executor

import (
	"context"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/aggregator"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/executor/mocks"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/strategies"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestExecutor_Execute_FullPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockStrategyRunner(ctrl)
	mockAgg := mocks.NewMockAggregator(ctrl)

	expected := 3
	analysisCtx := models.AnalysisContext{
		RequestID: "test-001",
		Input:     "abcabcbb",
		Expected:  &expected,
		CreatedAt: time.Now(),
	}

	stageResults := []models.StageResult{
		{Name: "position-map", Length: 3, Duration: time.Microsecond},
		{Name: "shrinking-set", Length: 3, Duration: time.Microsecond},
	}
	mockRunner.EXPECT().Run(analysisCtx).Return(stageResults)

	expectedResult := models.AnalysisResult{
		ID:        "test-001",
		Input:     "abcabcbb",
		Length:    3,
		Substring: "abc",
		Expected:  &expected,
		Stages:    stageResults,
		Verdict:   models.VerdictPass,
	}
	mockAgg.EXPECT().Aggregate(analysisCtx, stageResults).Return(expectedResult)

	executor := NewExecutor(mockRunner, mockAgg, newTestLogger())

	result := executor.Execute(context.Background(), analysisCtx)

	if result.ID != "test-001" {
		t.Errorf("expected ID test-001, got %s", result.ID)
	}
	if result.Verdict != models.VerdictPass {
		t.Errorf("expected verdict Pass, got %s", result.Verdict)
	}
	if result.Length != 3 {
		t.Errorf("expected length 3, got %d", result.Length)
	}
}

func TestExecutor_Execute_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockStrategyRunner(ctrl)
	mockAgg := mocks.NewMockAggregator(ctrl)

	// Neither collaborator may be called once the context is done.
	mockRunner.EXPECT().Run(gomock.Any()).Times(0)
	mockAgg.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executor := NewExecutor(mockRunner, mockAgg, newTestLogger())
	result := executor.Execute(ctx, models.AnalysisContext{RequestID: "test-002", Input: "abc"})

	if result.Verdict != models.VerdictFail {
		t.Errorf("expected verdict Fail, got %s", result.Verdict)
	}
	if result.Error != context.Canceled.Error() {
		t.Errorf("expected error %q, got %q", context.Canceled.Error(), result.Error)
	}
}

func TestExecutor_Execute_RealPipeline(t *testing.T) {
	logger := newTestLogger()
	checkers, err := strategies.NewStrategyPool(logger).Build(nil)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	executor := NewExecutor(strategies.NewStageRunner(checkers), aggregator.NewAggregator(logger), logger)

	tests := []struct {
		input    string
		expected int
	}{
		{"abcabcbb", 3},
		{"bbbbb", 1},
		{"pwwkew", 3},
		{"", 0},
		{"abcdefg", 7},
		{"aab", 2},
		{"dvdf", 3},
		{"au", 2},
	}

	for _, tt := range tests {
		expected := tt.expected
		result := executor.Execute(context.Background(), models.AnalysisContext{
			RequestID: tt.input,
			Input:     tt.input,
			Expected:  &expected,
		})
		if result.Verdict != models.VerdictPass {
			t.Errorf("input %q: verdict %s (length %d, error %q)", tt.input, result.Verdict, result.Length, result.Error)
		}
	}
}
