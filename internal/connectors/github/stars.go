package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
	"github.com/custodia-labs/starcat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/starcat-cli/internal/logger"
)

// Ensure StarFetcher implements the interface.
var _ driven.StarLister = (*StarFetcher)(nil)

const (
	// DefaultPageSize is the per-page item count for star listing.
	// 100 is the GitHub API maximum.
	DefaultPageSize = 100

	// DefaultPageDelay separates successful page fetches. Mandatory even
	// when the API never pushes back, to stay under typical limits.
	DefaultPageDelay = 500 * time.Millisecond

	// DefaultMaxRetries bounds retries of a single page on transient errors.
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the fixed delay before retrying a failed page.
	DefaultRetryDelay = 2 * time.Second

	// ResetMargin is the safety margin added when sleeping until a
	// rate limit reset time.
	ResetMargin = 2 * time.Second
)

// StarFetcher retrieves a user's complete starred-repository collection
// through sequential page requests. It implements the driven.StarLister port.
type StarFetcher struct {
	client     *Client
	pageSize   int
	pageDelay  time.Duration
	maxRetries int
	retryDelay time.Duration
}

// Option configures the star fetcher.
type Option func(*StarFetcher)

// WithPageSize sets the per-page item count (capped at 100 by the API).
func WithPageSize(size int) Option {
	return func(f *StarFetcher) {
		if size > 0 {
			f.pageSize = size
		}
	}
}

// WithPageDelay sets the delay between successful page fetches.
func WithPageDelay(d time.Duration) Option {
	return func(f *StarFetcher) {
		if d >= 0 {
			f.pageDelay = d
		}
	}
}

// WithMaxRetries sets the transient-error retry bound per page.
func WithMaxRetries(n int) Option {
	return func(f *StarFetcher) {
		if n >= 0 {
			f.maxRetries = n
		}
	}
}

// WithRetryDelay sets the fixed delay before a transient-error retry.
func WithRetryDelay(d time.Duration) Option {
	return func(f *StarFetcher) {
		if d >= 0 {
			f.retryDelay = d
		}
	}
}

// NewStarFetcher creates a star fetcher on top of the given client.
func NewStarFetcher(client *Client, opts ...Option) *StarFetcher {
	f := &StarFetcher{
		client:     client,
		pageSize:   DefaultPageSize,
		pageDelay:  DefaultPageDelay,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ListStarred fetches all pages of the user's stars, newest first.
//
// The returned result is never nil. On an unrecoverable failure it carries
// everything accumulated so far with Complete=false, alongside the error:
// domain.ErrUserNotFound when the account is invalid or inaccessible,
// ErrRetriesExhausted when a page kept failing transiently.
func (f *StarFetcher) ListStarred(ctx context.Context, user string) (*domain.FetchResult, error) {
	result := &domain.FetchResult{}
	if user == "" {
		return result, fmt.Errorf("%w: user must not be empty", domain.ErrInvalidInput)
	}

	for page := 1; ; page++ {
		starred, err := f.fetchPage(ctx, user, page)
		if err != nil {
			return result, err
		}

		for _, sr := range starred {
			result.Repos = append(result.Repos, convertRepo(sr))
		}
		logger.Debug("github: page %d returned %d repos (total %d)", page, len(starred), len(result.Repos))

		// A short page is the natural end of the listing. No separate
		// total count is requested or trusted.
		if len(starred) < f.pageSize {
			result.Complete = true
			return result, nil
		}

		if err := sleepCtx(ctx, f.pageDelay); err != nil {
			return result, err
		}
	}
}

// fetchPage requests one page, handling rate limits and transient failures.
// Rate-limited requests wait for the advertised reset and retry the same
// page without consuming the retry budget; only generic transient errors
// count against it.
func (f *StarFetcher) fetchPage(ctx context.Context, user string, page int) ([]*gh.StarredRepository, error) {
	retries := 0
	for {
		starred, err := f.client.ListStarredPage(ctx, user, page, f.pageSize)
		if err == nil {
			return starred, nil
		}

		var rateErr *RateLimitError
		if errors.As(err, &rateErr) {
			wait := time.Until(rateErr.ResetAt) + ResetMargin
			if wait < 0 {
				wait = ResetMargin
			}
			logger.Warn("github: rate limited on page %d, waiting %s", page, wait.Round(time.Second))
			if serr := sleepCtx(ctx, wait); serr != nil {
				return nil, serr
			}
			continue
		}

		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, user)
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		retries++
		if retries > f.maxRetries {
			return nil, fmt.Errorf("%w: page %d: %v", ErrRetriesExhausted, page, err)
		}
		logger.Warn("github: page %d failed (attempt %d/%d): %v", page, retries, f.maxRetries, err)
		if serr := sleepCtx(ctx, f.retryDelay); serr != nil {
			return nil, serr
		}
	}
}

// Validate checks the configured credentials with a lightweight API call.
func (f *StarFetcher) Validate(ctx context.Context) error {
	if err := f.client.ValidateCredentials(ctx); err != nil {
		if IsUnauthorized(err) {
			return fmt.Errorf("%w: %v", domain.ErrAuthRequired, err)
		}
		return err
	}
	return nil
}

// convertRepo maps a go-github starred record to the domain type.
func convertRepo(sr *gh.StarredRepository) domain.Repository {
	r := sr.GetRepository()
	return domain.Repository{
		FullName:    r.GetFullName(),
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Topics:      r.Topics,
		Stars:       r.GetStargazersCount(),
		URL:         r.GetHTMLURL(),
	}
}

// sleepCtx sleeps for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
