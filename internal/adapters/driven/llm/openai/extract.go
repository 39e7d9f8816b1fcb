package openai

import (
	"encoding/json"
	"strings"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
)

// Wire format expected inside the model's free-form response.
type wireResponse struct {
	Categories []wireCategory `json:"categories"`
}

type wireCategory struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Repositories []wireRepo `json:"repositories"`
}

type wireRepo struct {
	FullName string `json:"full_name"`
	Reason   string `json:"reason"`
}

// parseSuggestions extracts the first balanced brace-delimited substring
// from free-form model output and attempts a structured parse. Returns
// false when no such substring exists or it does not decode into the
// expected shape. No stricter guarantee is assumed of the upstream service.
func parseSuggestions(text string) ([]domain.CategorySuggestion, bool) {
	obj, ok := extractJSONObject(text)
	if !ok {
		return nil, false
	}

	var wire wireResponse
	if err := json.Unmarshal([]byte(obj), &wire); err != nil {
		return nil, false
	}
	if wire.Categories == nil {
		return nil, false
	}

	suggestions := make([]domain.CategorySuggestion, 0, len(wire.Categories))
	for _, c := range wire.Categories {
		s := domain.CategorySuggestion{
			Name:        strings.TrimSpace(c.Name),
			Description: strings.TrimSpace(c.Description),
			Repos:       make([]domain.Assignment, 0, len(c.Repositories)),
		}
		for _, r := range c.Repositories {
			s.Repos = append(s.Repos, domain.Assignment{
				FullName: strings.TrimSpace(r.FullName),
				Reason:   strings.TrimSpace(r.Reason),
			})
		}
		suggestions = append(suggestions, s)
	}

	return suggestions, true
}

// extractJSONObject returns the first balanced {...} substring of text,
// tracking string literals and escapes so braces inside values don't
// terminate the scan early.
func extractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]

		if escaped {
			escaped = false
			continue
		}

		switch {
		case inString && ch == '\\':
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
			// Everything else inside a string is payload.
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
