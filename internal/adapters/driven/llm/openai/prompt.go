package openai

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
	"github.com/custodia-labs/starcat-cli/internal/core/ports/driven"
)

// defaultClassifyPrompt is the fallback prompt when no PromptStore is configured.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const defaultClassifyPrompt = `You are organising a developer's starred GitHub repositories into categories.

Group the repositories below into a small number of coherent categories. Every repository should be placed in the category that fits it best; a repository may appear in more than one category only when it genuinely belongs to both.

Respond with exactly one JSON object of this shape and nothing else:
{"categories": [{"name": "...", "description": "...", "repositories": [{"full_name": "owner/repo", "reason": "..."}]}]}

Repositories:
%s`

// defaultContextPrompt is prepended for non-first batches so the service
// reuses categories established by earlier batches.
const defaultContextPrompt = `The following categories already exist from earlier batches. Reuse them (matching the name exactly) wherever they fit before inventing new ones:
%s`

// DefaultPrompts returns the embedded prompt templates keyed by their
// well-known names, for seeding a file-based prompt store.
func DefaultPrompts() map[string]string {
	return map[string]string{
		driven.PromptClassify:        defaultClassifyPrompt,
		driven.PromptClassifyContext: defaultContextPrompt,
	}
}

// buildPrompt assembles the classification prompt: prior category context
// first (when not the first batch), then the instruction block with the
// batch's repository listing.
func (c *Classifier) buildPrompt(batch []domain.Repository, prior []domain.CategorySummary, first bool) string {
	var b strings.Builder

	if !first && len(prior) > 0 {
		tmpl := c.loadPrompt(driven.PromptClassifyContext, defaultContextPrompt)
		fmt.Fprintf(&b, tmpl, formatCategories(prior))
		b.WriteString("\n\n")
	}

	tmpl := c.loadPrompt(driven.PromptClassify, defaultClassifyPrompt)
	fmt.Fprintf(&b, tmpl, formatRepos(batch))

	return b.String()
}

// formatRepos renders one line per repository with the metadata the model
// needs: identifier, description, language, topics.
func formatRepos(repos []domain.Repository) string {
	var b strings.Builder
	for _, r := range repos {
		b.WriteString("- ")
		b.WriteString(r.FullName)
		if r.Description != "" {
			b.WriteString(": ")
			b.WriteString(r.Description)
		}
		var extras []string
		if r.Language != "" {
			extras = append(extras, "language: "+r.Language)
		}
		if len(r.Topics) > 0 {
			extras = append(extras, "topics: "+strings.Join(r.Topics, ", "))
		}
		if len(extras) > 0 {
			b.WriteString(" (")
			b.WriteString(strings.Join(extras, "; "))
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatCategories renders one line per existing category.
func formatCategories(prior []domain.CategorySummary) string {
	var b strings.Builder
	for _, c := range prior {
		b.WriteString("- ")
		b.WriteString(c.Name)
		if c.Description != "" {
			b.WriteString(": ")
			b.WriteString(c.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// loadPrompt loads a prompt from the store, falling back to the default if
// unavailable.
func (c *Classifier) loadPrompt(name, fallback string) string {
	if c.promptStore == nil {
		return fallback
	}
	prompt, err := c.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
