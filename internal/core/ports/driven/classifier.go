package driven

import (
	"context"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
)

// Classifier submits one batch of repositories to the classification
// service and parses category suggestions from its free-form response.
//
// The classification service is untrusted text generation, not a strict
// API: implementations follow a best-effort contract and return an empty
// suggestion list (not an error) when the response contains no parseable
// result. Errors are reserved for failures of the call itself; callers
// treat those as a degraded batch and continue.
type Classifier interface {
	// Classify sends one blocking request covering the batch. For
	// non-first batches, prior carries the names and descriptions of all
	// categories already known so the service can reuse them.
	//
	// The result (when non-nil) always carries the prompt that was sent
	// and the raw response text, so callers can persist the exchange even
	// when no suggestions were produced.
	Classify(ctx context.Context, batch []domain.Repository, prior []domain.CategorySummary, first bool) (*domain.ClassificationResult, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request, without running inference.
	Ping(ctx context.Context) error
}
