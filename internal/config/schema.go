package config

import (
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
)

// CasesConfig represents the cases file: the strategies to run and the
// demonstration cases with their expected answers
type CasesConfig struct {
	Strategies []string `yaml:"strategies"`
	Cases      []Case   `yaml:"cases"`
}

// Case is one literal input with an optional expected length
type Case struct {
	ID       string `yaml:"id"`
	Input    string `yaml:"input"`
	Expected *int   `yaml:"expected"`
}

func (c Case) Request() models.AnalysisRequest {
	return models.AnalysisRequest{
		CaseID:   c.ID,
		Input:    c.Input,
		Expected: c.Expected,
	}
}

func (c Case) inputLength() int {
	return utf8.RuneCountInString(c.Input)
}
