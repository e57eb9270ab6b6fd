package mcpadapter

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/batch"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
)

// AnalyzeInput is the MCP tool input schema (matches HTTP API field names).
type AnalyzeInput struct {
	CaseID   string `json:"case_id,omitempty" jsonschema:"optional identifier echoed back in the result"`
	Input    string `json:"input" jsonschema:"text to scan for the longest run without repeating characters"`
	Expected *int   `json:"expected,omitempty" jsonschema:"optional expected length; sets the verdict to pass or fail"`
}

// NewAnalyzeHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewAnalyzeHandler(exec batch.Executor) func(context.Context, *mcp.CallToolRequest, AnalyzeInput) (*mcp.CallToolResult, models.AnalysisResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, models.AnalysisResult, error) {
		return Analyze(ctx, exec, req, input)
	}
}

// Analyze runs the strategy pipeline and returns the result.
func Analyze(
	ctx context.Context,
	exec batch.Executor,
	req *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, models.AnalysisResult, error) {
	if input.Expected != nil && *input.Expected < 0 {
		return nil, models.AnalysisResult{}, fmt.Errorf("expected length must be non-negative, got %d", *input.Expected)
	}

	analysisCtx := models.NewAnalysisContext(models.AnalysisRequest{
		CaseID:   input.CaseID,
		Input:    input.Input,
		Expected: input.Expected,
	})

	result := exec.Execute(ctx, analysisCtx)
	return nil, result, nil
}
