package driving

import (
	"context"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
)

// Pipeline runs the full fetch → batch → classify → merge sequence for one
// user and produces the merged taxonomy plus the uncategorized remainder.
type Pipeline interface {
	// Run executes the pipeline to completion. It returns an error only
	// for conditions that prevent producing any result (missing user,
	// empty fetch, invalid batch size); degraded batches and partial
	// fetches are reported through the RunSummary instead.
	Run(ctx context.Context, user string) (*domain.RunSummary, error)
}

// Progress receives pipeline milestones for display. Implementations must
// be cheap; calls happen inline between pipeline steps.
type Progress interface {
	// Fetched reports the fetch outcome.
	Fetched(repos int, complete bool)

	// BatchDone reports one classified-and-merged batch and the running
	// category count after its merge.
	BatchDone(batch, total, categories int)
}
