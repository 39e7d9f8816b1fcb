package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvGitHubToken, "")
	t.Setenv(EnvOpenAIAPIKey, "")

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

		require.NoError(t, err)
		assert.Equal(t, DefaultPageSize, cfg.GitHub.PageSize)
		assert.Equal(t, DefaultPageDelayMS, cfg.GitHub.PageDelayMS)
		assert.Equal(t, DefaultModel, cfg.LLM.Model)
		assert.Equal(t, DefaultBatchSize, cfg.Run.BatchSize)
		assert.Equal(t, DefaultBatchPauseMS, cfg.Run.BatchPauseMS)
		assert.Equal(t, DefaultOutputDir, cfg.Run.OutputDir)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
[github]
token = "ghp_file"
page_size = 50

[llm]
api_key = "sk-file"
model = "gpt-4o"
temperature = 0.7

[run]
batch_size = 10
output_dir = "out"
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "ghp_file", cfg.GitHub.Token)
		assert.Equal(t, 50, cfg.GitHub.PageSize)
		assert.Equal(t, "gpt-4o", cfg.LLM.Model)
		assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 10, cfg.Run.BatchSize)
		assert.Equal(t, "out", cfg.Run.OutputDir)
		// Values the file omits keep their defaults.
		assert.Equal(t, DefaultPageDelayMS, cfg.GitHub.PageDelayMS)
	})

	t.Run("environment overrides file credentials", func(t *testing.T) {
		t.Setenv(EnvGitHubToken, "ghp_env")
		t.Setenv(EnvOpenAIAPIKey, "sk-env")
		path := writeConfig(t, `
[github]
token = "ghp_file"

[llm]
api_key = "sk-file"
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "ghp_env", cfg.GitHub.Token)
		assert.Equal(t, "sk-env", cfg.LLM.APIKey)
	})

	t.Run("malformed TOML is an error", func(t *testing.T) {
		path := writeConfig(t, `[github`)

		_, err := Load(path)

		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			GitHub: GitHubConfig{Token: "ghp_x"},
			LLM:    LLMConfig{APIKey: "sk-x"},
			Run:    RunConfig{BatchSize: DefaultBatchSize},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing GitHub token", func(t *testing.T) {
		cfg := valid()
		cfg.GitHub.Token = ""

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvGitHubToken)
	})

	t.Run("missing API key", func(t *testing.T) {
		cfg := valid()
		cfg.LLM.APIKey = ""

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvOpenAIAPIKey)
	})

	t.Run("non-positive batch size", func(t *testing.T) {
		cfg := valid()
		cfg.Run.BatchSize = 0

		assert.Error(t, cfg.Validate())
	})
}
