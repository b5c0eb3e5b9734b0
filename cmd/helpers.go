package cmd

import (
	"fmt"

	"github.com/ziadkadry99/resume-radar/internal/config"
	"github.com/ziadkadry99/resume-radar/internal/llm"
	"github.com/ziadkadry99/resume-radar/internal/parser"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `resume-radar init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildAnalyzer creates the resume analyzer from config. The mock provider
// needs no API key; real providers are wrapped in a rate limiter when one is
// configured.
func buildAnalyzer(cfg *config.Config) (parser.ResumeAnalyzer, error) {
	if cfg.Provider == config.ProviderMock {
		return parser.NewMock(), nil
	}

	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("creating AI provider: %w", err)
	}
	if cfg.MaxRequestsPerMinute > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.MaxRequestsPerMinute)
	}
	return parser.New(provider, cfg.Model), nil
}
