package domain

import "time"

// RunSummary is the primary output of a pipeline run.
type RunSummary struct {
	// RunID uniquely identifies the run. Artifact paths include it.
	RunID string

	// User is the account whose stars were classified.
	User string

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time

	// Repos is the fetched collection, in descending-recency star order.
	Repos []Repository

	// FetchComplete is false when the listing was cut short (invalid user,
	// exhausted retries) and Repos holds a partial collection.
	FetchComplete bool

	// Batches is the number of batches submitted for classification.
	Batches int

	// FailedBatches counts batches that yielded no suggestions.
	FailedBatches int

	// Taxonomy is the merged category set.
	Taxonomy *Taxonomy

	// Uncategorized are repositories absent from every category.
	Uncategorized []Repository
}
