package config

// ProviderType identifies an AI provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGoogle ProviderType = "google"
	// ProviderMock runs the keyword-based mock analyzer, no API key needed.
	ProviderMock ProviderType = "mock"
)

// QualityTier controls the model selection trade-off between speed/cost and
// analysis quality.
type QualityTier string

const (
	QualityLite   QualityTier = "lite"
	QualityNormal QualityTier = "normal"
	QualityMax    QualityTier = "max"
)

// Config is the top-level resume-radar configuration, corresponding to
// .resumeradar.yml.
type Config struct {
	Provider ProviderType `yaml:"provider" koanf:"provider"`
	Model    string       `yaml:"model" koanf:"model"`
	Quality  QualityTier  `yaml:"quality" koanf:"quality"`

	// DataDir holds the SQLite database and saved upload files.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	// APIAddr is the listen address of the analysis API server.
	APIAddr string `yaml:"api_addr" koanf:"api_addr"`
	// WebAddr is the listen address of the web UI server.
	WebAddr string `yaml:"web_addr" koanf:"web_addr"`
	// APIBaseURL is where the web UI and CLI reach the API server.
	APIBaseURL string `yaml:"api_base_url" koanf:"api_base_url"`

	// MaxRequestsPerMinute caps analysis calls to the AI provider.
	// Zero disables rate limiting.
	MaxRequestsPerMinute int `yaml:"max_requests_per_minute" koanf:"max_requests_per_minute"`
}
