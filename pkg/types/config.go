package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "genspace/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the catalogue searcher.
type SearchConfig struct {
	// CatalogPath is an optional YAML file of study records. Empty uses
	// the built-in sample catalogue.
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`

	// SynonymsPath is an optional YAML file of keyword synonyms. Empty
	// uses the built-in table.
	SynonymsPath string `json:"synonyms_path,omitempty" yaml:"synonyms_path,omitempty"`

	// MaxResults caps the number of results returned; zero means no cap.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ReportConfig holds settings for the report builder. The three metric
// values are emitted verbatim into the statistics section; they live in
// configuration so a real computation can replace them without changing
// the document schema.
type ReportConfig struct {
	Confidence      int `json:"confidence" yaml:"confidence"`
	Coverage        int `json:"coverage" yaml:"coverage"`
	Reproducibility int `json:"reproducibility" yaml:"reproducibility"`

	// OutputDir is the directory rendered reports are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// DefaultReportConfig returns the stock report settings.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Confidence:      94,
		Coverage:        87,
		Reproducibility: 91,
		OutputDir:       "reports",
	}
}

// HistoryConfig holds settings for the report history store.
type HistoryConfig struct {
	// DBPath is the SQLite database file (default "data/history.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ArchiveConfig holds settings for the NASA OSDR archive client.
type ArchiveConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the OSDR API root (default "https://osdr.nasa.gov").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey enables live archive queries. Empty serves sample data.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for rate-limited
	// requests (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// PolishConfig holds settings for the AI prose-polish gateway.
type PolishConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the chat-completions API root.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Model is the model identifier (e.g. "google/gemini-2.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the gateway.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed calls
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// AllowedOrigins configures CORS for browser clients.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`

	// AuthToken gates the history endpoints. Empty disables them.
	AuthToken string `json:"auth_token,omitempty" yaml:"auth_token,omitempty"`
}

// AppConfig groups the configuration for every component.
type AppConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	History HistoryConfig `json:"history" yaml:"history"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
	Polish  PolishConfig  `json:"polish" yaml:"polish"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}
