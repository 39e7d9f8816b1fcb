package driven

import (
	"github.com/custodia-labs/starcat-cli/internal/core/domain"
)

// ReportStore persists the artifacts of a pipeline run. Serialization
// format is the store's concern; the core hands over plain domain values.
//
// Store failures must never abort a run: the pipeline logs them and keeps
// going, because classification work already paid for is worth more than a
// missing artifact file.
type ReportStore interface {
	// Begin prepares storage for a new run. Called once before any other
	// write for that run ID.
	Begin(runID, user string) error

	// WriteStars persists the raw fetched collection.
	WriteStars(repos []domain.Repository) error

	// WriteExchange persists one batch's prompt/response pair.
	// Batch numbers start at 1.
	WriteExchange(batch int, prompt, response string) error

	// WriteTaxonomy persists the final merged taxonomy and the
	// uncategorized remainder, including the rendered human-readable view.
	WriteTaxonomy(summary *domain.RunSummary) error

	// Path returns the location artifacts are written to, for display.
	Path() string
}
