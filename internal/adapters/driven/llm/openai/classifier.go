// Package openai provides a classification adapter using the OpenAI API.
package openai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	oai "github.com/sashabaranov/go-openai"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
	"github.com/custodia-labs/starcat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/starcat-cli/internal/logger"
)

// Ensure Classifier implements the interfaces.
var (
	_ driven.Classifier       = (*Classifier)(nil)
	_ driven.PromptStoreAware = (*Classifier)(nil)
)

// Default configuration values.
const (
	DefaultModel       = "gpt-4o-mini"
	DefaultTimeout     = 120 * time.Second
	DefaultMaxTokens   = 4096
	DefaultTemperature = 0.2
)

// Config holds configuration for the OpenAI classifier.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL is the API base URL. Can be changed for Azure OpenAI or
	// compatible APIs. Empty means the official endpoint.
	BaseURL string

	// Model is the chat model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the request timeout (default: 120s). One classification
	// call covers a whole batch, so generous timeouts are appropriate.
	Timeout time.Duration

	// MaxTokens caps the completion length (default: 4096).
	MaxTokens int

	// Temperature controls randomness (default: 0.2; categorization wants
	// consistency, not creativity).
	Temperature float32
}

// Classifier submits repository batches to a chat-completion endpoint and
// parses category suggestions out of the free-form response. It implements
// the driven.Classifier port.
type Classifier struct {
	client      *oai.Client
	model       string
	maxTokens   int
	temperature float32
	promptStore driven.PromptStore
}

// NewClassifier creates a new OpenAI classifier.
func NewClassifier(cfg Config) (*Classifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}

	clientCfg := oai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Classifier{
		client:      oai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Classify sends one batch (plus prior category context for non-first
// batches) and parses the first JSON object found in the response.
//
// This is a best-effort contract: an unparseable response yields an empty
// suggestion list, not an error. The returned result always carries the
// prompt, and the raw response when one was received, so callers can
// persist the exchange either way.
func (c *Classifier) Classify(
	ctx context.Context,
	batch []domain.Repository,
	prior []domain.CategorySummary,
	first bool,
) (*domain.ClassificationResult, error) {
	prompt := c.buildPrompt(batch, prior, first)
	result := &domain.ClassificationResult{Prompt: prompt}

	resp, err := c.client.CreateChatCompletion(ctx, oai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages: []oai.ChatCompletionMessage{
			{Role: oai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return result, fmt.Errorf("openai: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		logger.Warn("openai: response contained no choices")
		return result, nil
	}

	result.RawResponse = resp.Choices[0].Message.Content
	suggestions, ok := parseSuggestions(result.RawResponse)
	if !ok {
		logger.Warn("openai: no parseable JSON object in response (%d bytes)", len(result.RawResponse))
		return result, nil
	}

	result.Suggestions = suggestions
	return result, nil
}

// ModelName returns the name of the model being used.
func (c *Classifier) ModelName() string {
	return c.model
}

// Ping validates the service is reachable by listing models.
// This is a lightweight check that validates the API key without running
// inference.
func (c *Classifier) Ping(ctx context.Context) error {
	if _, err := c.client.ListModels(ctx); err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	return nil
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the classifier uses hardcoded default prompts.
func (c *Classifier) SetPromptStore(store driven.PromptStore) {
	c.promptStore = store
}
