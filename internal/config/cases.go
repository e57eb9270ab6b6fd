package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/strategies"
	"gopkg.in/yaml.v3"
)

const defaultCasesPath = "configs/cases.yaml"

func LoadCasesConfig() (*CasesConfig, error) {
	path := os.Getenv("CASES_CONFIG_PATH")
	if path == "" {
		path = defaultCasesPath
	}

	return LoadCasesFile(path)
}

func LoadCasesFile(path string) (*CasesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg CasesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cases config %s: %w", path, err)
	}

	return &cfg, nil
}

// Default returns the built-in demonstration cases.
func Default() *CasesConfig {
	cfg := &CasesConfig{
		Cases: []Case{
			newCase("abcabcbb", "abcabcbb", 3),
			newCase("bbbbb", "bbbbb", 1),
			newCase("pwwkew", "pwwkew", 3),
			newCase("empty", "", 0),
			newCase("abcdefg", "abcdefg", 7),
			newCase("aab", "aab", 2),
			newCase("dvdf", "dvdf", 3),
			newCase("au", "au", 2),
		},
	}
	applyDefaults(cfg)
	return cfg
}

func newCase(id, input string, expected int) Case {
	return Case{ID: id, Input: input, Expected: &expected}
}

func applyDefaults(cfg *CasesConfig) {
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = append([]string(nil), strategies.DefaultStrategies...)
	}
}

func (c *CasesConfig) Validate() error {
	seenStrategies := make(map[string]bool, len(c.Strategies))
	for _, name := range c.Strategies {
		if !strategies.Known(name) {
			return fmt.Errorf("unknown strategy %q", name)
		}
		if seenStrategies[name] {
			return fmt.Errorf("duplicate strategy %q", name)
		}
		seenStrategies[name] = true
	}

	if len(c.Cases) == 0 {
		return errors.New("no cases configured")
	}

	seenCases := make(map[string]bool, len(c.Cases))
	for i, cs := range c.Cases {
		if cs.ID == "" {
			return fmt.Errorf("case %d: missing id", i)
		}
		if seenCases[cs.ID] {
			return fmt.Errorf("duplicate case id %q", cs.ID)
		}
		seenCases[cs.ID] = true

		if cs.Expected == nil {
			continue
		}
		if *cs.Expected < 0 {
			return fmt.Errorf("case %q: negative expected length %d", cs.ID, *cs.Expected)
		}
		if *cs.Expected > cs.inputLength() {
			return fmt.Errorf("case %q: expected length exceeds input length (%d > %d)", cs.ID, *cs.Expected, cs.inputLength())
		}
	}

	return nil
}
