// Package file loads starcat configuration from a TOML file with
// environment-variable overrides for credentials.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override file values. Credentials usually
// live here rather than on disk.
const (
	EnvGitHubToken  = "GITHUB_TOKEN"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

// Defaults.
const (
	DefaultBatchSize    = 30
	DefaultPageSize     = 100
	DefaultPageDelayMS  = 500
	DefaultBatchPauseMS = 1000
	DefaultOutputDir    = "starcat-out"
	DefaultModel        = "gpt-4o-mini"
)

// Config is the full application configuration.
type Config struct {
	GitHub GitHubConfig `toml:"github"`
	LLM    LLMConfig    `toml:"llm"`
	Run    RunConfig    `toml:"run"`
}

// GitHubConfig configures the star listing endpoint.
type GitHubConfig struct {
	// Token is the bearer credential. Usually provided via GITHUB_TOKEN.
	Token string `toml:"token"`

	// PageSize is the per-page item count (API max 100).
	PageSize int `toml:"page_size"`

	// PageDelayMS is the delay between successful page fetches.
	PageDelayMS int `toml:"page_delay_ms"`
}

// LLMConfig configures the classification endpoint.
type LLMConfig struct {
	// APIKey is the completion-service credential. Usually provided via
	// OPENAI_API_KEY.
	APIKey string `toml:"api_key"`

	// BaseURL overrides the API endpoint, for Azure or compatible servers.
	BaseURL string `toml:"base_url"`

	// Model is the chat model used for classification.
	Model string `toml:"model"`

	// MaxTokens caps the completion length. Zero means the adapter default.
	MaxTokens int `toml:"max_tokens"`

	// Temperature controls sampling randomness. Zero means the adapter default.
	Temperature float32 `toml:"temperature"`
}

// RunConfig configures the pipeline itself.
type RunConfig struct {
	// BatchSize is the number of repositories per classification batch.
	BatchSize int `toml:"batch_size"`

	// BatchPauseMS is the delay between classification calls.
	BatchPauseMS int `toml:"batch_pause_ms"`

	// OutputDir is where run artifacts are written.
	OutputDir string `toml:"output_dir"`

	// PromptDir holds user-editable prompt templates.
	// Empty means ~/.starcat/prompts.
	PromptDir string `toml:"prompt_dir"`
}

// DefaultPath returns the default config file location
// (~/.starcat/config.toml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".starcat", "config.toml"), nil
}

// Load reads the config file at path, fills in defaults, and applies
// environment overrides. A missing file is not an error: defaults plus
// environment are enough to run.
func Load(path string) (*Config, error) {
	cfg := &Config{
		GitHub: GitHubConfig{
			PageSize:    DefaultPageSize,
			PageDelayMS: DefaultPageDelayMS,
		},
		LLM: LLMConfig{
			Model: DefaultModel,
		},
		Run: RunConfig{
			BatchSize:    DefaultBatchSize,
			BatchPauseMS: DefaultBatchPauseMS,
			OutputDir:    DefaultOutputDir,
		},
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults + environment only.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv lets environment variables override file values for credentials.
func applyEnv(cfg *Config) {
	if token := os.Getenv(EnvGitHubToken); token != "" {
		cfg.GitHub.Token = token
	}
	if key := os.Getenv(EnvOpenAIAPIKey); key != "" {
		cfg.LLM.APIKey = key
	}
}

// Validate checks that the configuration can support a run. Missing
// credentials are fatal at startup, before any fetching begins.
func (c *Config) Validate() error {
	if c.GitHub.Token == "" {
		return fmt.Errorf("GitHub token missing: set %s or github.token in the config file", EnvGitHubToken)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM API key missing: set %s or llm.api_key in the config file", EnvOpenAIAPIKey)
	}
	if c.Run.BatchSize <= 0 {
		return fmt.Errorf("run.batch_size must be positive, got %d", c.Run.BatchSize)
	}
	return nil
}
