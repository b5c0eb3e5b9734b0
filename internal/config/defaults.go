package config

// QualityPreset names the model to use for a given quality tier.
type QualityPreset struct {
	Model string
}

// qualityPresets maps each provider+quality combination to its model choice.
var qualityPresets = map[ProviderType]map[QualityTier]QualityPreset{
	ProviderOpenAI: {
		QualityLite:   {Model: "gpt-4o-mini"},
		QualityNormal: {Model: "gpt-4o"},
		QualityMax:    {Model: "gpt-4"},
	},
	ProviderGoogle: {
		QualityLite:   {Model: "gemini-2.0-flash"},
		QualityNormal: {Model: "gemini-1.5-pro"},
		QualityMax:    {Model: "gemini-1.5-pro"},
	},
	ProviderMock: {
		QualityLite:   {Model: "mock"},
		QualityNormal: {Model: "mock"},
		QualityMax:    {Model: "mock"},
	},
}

// DefaultConfig returns a Config with sensible defaults. The mock provider is
// the default so a fresh checkout works without any API key.
func DefaultConfig() *Config {
	return &Config{
		Provider:             ProviderMock,
		Model:                "mock",
		Quality:              QualityNormal,
		DataDir:              "data",
		APIAddr:              ":8000",
		WebAddr:              ":3000",
		APIBaseURL:           "http://localhost:8000",
		MaxRequestsPerMinute: 20,
	}
}

// GetPreset returns the quality preset for the given provider and tier.
// Returns the normal OpenAI preset if the combination is not found.
func GetPreset(provider ProviderType, tier QualityTier) QualityPreset {
	if tiers, ok := qualityPresets[provider]; ok {
		if preset, ok := tiers[tier]; ok {
			return preset
		}
	}
	return qualityPresets[ProviderOpenAI][QualityNormal]
}
