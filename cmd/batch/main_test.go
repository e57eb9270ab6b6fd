package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/batch"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/setup"
	"github.com/rs/zerolog"
)

const testInput = `{"case_id":"a","input":"abcabcbb","expected":3}
{"case_id":"b","input":"bbbbb","expected":1}
{"case_id":"c","input":"pwwkew"}
`

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func testConfig(t *testing.T) *setup.Config {
	t.Helper()
	t.Setenv("CASES_CONFIG_PATH", "../../configs/cases.yaml")
	return &setup.Config{Workers: 2}
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.jsonl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}
	return path
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRun_Summary(t *testing.T) {
	var out bytes.Buffer
	opts := options{input: writeInput(t, testInput), format: batch.FormatSummary, continueOnError: true}

	if err := run(context.Background(), opts, testConfig(t), newTestLogger(), nil, &out); err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	var summary batch.Summary
	if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
		t.Fatalf("Summary not flushed: %v (output %q)", err, out.String())
	}
	want := batch.Summary{Total: 3, Passed: 2, Computed: 1}
	if summary != want {
		t.Errorf("Summary = %+v, want %+v", summary, want)
	}
}

func TestRun_StdinAndOutputFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.txt")
	opts := options{input: "-", output: output, format: batch.FormatText, continueOnError: true}

	err := run(context.Background(), opts, testConfig(t), newTestLogger(), strings.NewReader(`{"case_id":"x","input":"dvdf","expected":3}`), nil)
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	want := "Input: 'dvdf' | Output: 3 | Expected: 3 | Pass: true\n"
	if string(data) != want {
		t.Errorf("Output = %q, want %q", data, want)
	}
}

func TestRun_StopOnWriteErrorReturnsError(t *testing.T) {
	opts := options{input: writeInput(t, testInput), format: batch.FormatJSONL, continueOnError: false}

	err := run(context.Background(), opts, testConfig(t), newTestLogger(), nil, failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "stopping after write error") {
		t.Errorf("Expected write error, got %v", err)
	}
}

func TestRun_ContinueOnWriteError(t *testing.T) {
	opts := options{input: writeInput(t, testInput), format: batch.FormatJSONL, continueOnError: true}

	if err := run(context.Background(), opts, testConfig(t), newTestLogger(), nil, failingWriter{}); err != nil {
		t.Errorf("Expected write errors to be tolerated, got %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		wantErr string
	}{
		{name: "missing input flag", opts: options{format: batch.FormatJSONL}, wantErr: "required flag -input"},
		{name: "missing input file", opts: options{input: "does-not-exist.jsonl", format: batch.FormatJSONL}, wantErr: "failed to open input file"},
		{name: "unknown format", opts: options{input: "-", format: "xml"}, wantErr: "unsupported output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.opts, testConfig(t), newTestLogger(), strings.NewReader(""), &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected %q error, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRun_DryRun(t *testing.T) {
	valid := options{input: writeInput(t, testInput), dryRun: true}
	if err := run(context.Background(), valid, testConfig(t), newTestLogger(), nil, nil); err != nil {
		t.Errorf("Expected valid input to pass, got %v", err)
	}

	invalid := options{input: writeInput(t, testInput+"{not json\n"), dryRun: true}
	err := run(context.Background(), invalid, testConfig(t), newTestLogger(), nil, nil)
	if !errors.Is(err, errValidation) {
		t.Errorf("Expected errValidation, got %v", err)
	}
}
