package openai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
)

func TestFormatRepos(t *testing.T) {
	t.Run("renders full metadata on one line", func(t *testing.T) {
		out := formatRepos([]domain.Repository{
			{
				FullName:    "gin-gonic/gin",
				Description: "HTTP web framework",
				Language:    "Go",
				Topics:      []string{"http", "web"},
			},
		})

		assert.Equal(t, "- gin-gonic/gin: HTTP web framework (language: Go; topics: http, web)", out)
	})

	t.Run("omits absent fields", func(t *testing.T) {
		out := formatRepos([]domain.Repository{{FullName: "o/bare"}})

		assert.Equal(t, "- o/bare", out)
	})

	t.Run("one line per repository, no trailing newline", func(t *testing.T) {
		out := formatRepos([]domain.Repository{
			{FullName: "a/one"},
			{FullName: "b/two"},
			{FullName: "c/three"},
		})

		assert.Len(t, strings.Split(out, "\n"), 3)
		assert.False(t, strings.HasSuffix(out, "\n"))
	})
}

func TestFormatCategories(t *testing.T) {
	out := formatCategories([]domain.CategorySummary{
		{Name: "Networking", Description: "HTTP tooling"},
		{Name: "Misc"},
	})

	assert.Equal(t, "- Networking: HTTP tooling\n- Misc", out)
}

func TestBuildPrompt(t *testing.T) {
	c := &Classifier{}

	t.Run("first batch carries no category context even when priors exist", func(t *testing.T) {
		prior := []domain.CategorySummary{{Name: "Networking"}}

		prompt := c.buildPrompt(testBatch, prior, true)

		assert.NotContains(t, prompt, "already exist")
		assert.Contains(t, prompt, "a/one")
	})

	t.Run("later batch with no priors carries no context block", func(t *testing.T) {
		prompt := c.buildPrompt(testBatch, nil, false)

		assert.NotContains(t, prompt, "already exist")
	})

	t.Run("later batch with priors puts the context before the instructions", func(t *testing.T) {
		prior := []domain.CategorySummary{{Name: "Networking", Description: "HTTP tooling"}}

		prompt := c.buildPrompt(testBatch, prior, false)

		ctxIdx := strings.Index(prompt, "Networking")
		repoIdx := strings.Index(prompt, "a/one")
		assert.GreaterOrEqual(t, ctxIdx, 0)
		assert.Greater(t, repoIdx, ctxIdx)
	})
}
