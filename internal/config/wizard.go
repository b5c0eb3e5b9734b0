package config

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .resumeradar.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to resume-radar! Let's configure the analyzer.")
	fmt.Println()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select AI provider",
		Items: []string{"openai", "google", "mock"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)

	// 2. Quality tier.
	qualityPrompt := promptui.Select{
		Label: "Select quality tier",
		Items: []string{
			"lite   - fast & cheap (gpt-4o-mini / gemini flash)",
			"normal - balanced (gpt-4o / gemini pro)",
			"max    - highest quality",
		},
	}
	qualityIdx, _, err := qualityPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("quality selection: %w", err)
	}
	tiers := []QualityTier{QualityLite, QualityNormal, QualityMax}
	quality := tiers[qualityIdx]

	preset := GetPreset(provider, quality)

	// 3. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory for the database and uploaded files",
		Default: "data",
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 4. API listen address.
	addrPrompt := promptui.Prompt{
		Label:   "API server listen address",
		Default: ":8000",
	}
	apiAddr, err := addrPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("api addr: %w", err)
	}

	defaults := DefaultConfig()
	cfg := &Config{
		Provider:             provider,
		Model:                preset.Model,
		Quality:              quality,
		DataDir:              dataDir,
		APIAddr:              apiAddr,
		WebAddr:              defaults.WebAddr,
		APIBaseURL:           defaults.APIBaseURL,
		MaxRequestsPerMinute: defaults.MaxRequestsPerMinute,
	}

	// Check for API key.
	envVar := APIKeyEnvVar(provider)
	if envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running resume-radar server.\n", envVar)
		}
	}

	configPath := ".resumeradar.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
