package driven

import (
	"context"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
)

// StarLister fetches the complete starred-repository collection for a user
// from a paginated, rate-limited listing endpoint.
type StarLister interface {
	// ListStarred returns the user's starred repositories in
	// descending-recency order. The result is never nil: on an
	// unrecoverable failure it carries whatever was accumulated with
	// Complete=false, alongside the error describing the cause.
	//
	// Pagination, retry, backoff, and inter-page throttling are the
	// implementation's responsibility.
	ListStarred(ctx context.Context, user string) (*domain.FetchResult, error)

	// Validate checks that the lister is properly configured and
	// authenticated by making a lightweight test call.
	Validate(ctx context.Context) error
}
