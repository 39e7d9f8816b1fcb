// Package services contains the core application services that implement
// the driving ports.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
	"github.com/custodia-labs/starcat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/starcat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/starcat-cli/internal/logger"
)

// Ensure PipelineService implements the interface.
var _ driving.Pipeline = (*PipelineService)(nil)

// DefaultBatchPause separates consecutive classification calls. Deliberate
// throttling of the completion endpoint, not concurrency control.
const DefaultBatchPause = time.Second

// PipelineService sequences the full run: fetch all stars, split into
// batches, classify each batch in order, merge each batch's suggestions
// before the next call so category identity is first-writer-wins.
//
// The taxonomy is an owned, single-writer value threaded through the run;
// no step touches it concurrently.
type PipelineService struct {
	lister     driven.StarLister
	classifier driven.Classifier
	reports    driven.ReportStore
	progress   driving.Progress
	batchSize  int
	batchPause time.Duration
}

// NewPipelineService creates a pipeline service. The report store may be
// nil, in which case no artifacts are written.
func NewPipelineService(lister driven.StarLister, classifier driven.Classifier, reports driven.ReportStore) *PipelineService {
	return &PipelineService{
		lister:     lister,
		classifier: classifier,
		reports:    reports,
		batchSize:  domain.DefaultBatchSize,
		batchPause: DefaultBatchPause,
	}
}

// SetBatchSize overrides the default classification batch size.
// The value is validated when the run splits batches.
func (s *PipelineService) SetBatchSize(size int) {
	s.batchSize = size
}

// SetBatchPause overrides the delay between classification calls.
func (s *PipelineService) SetBatchPause(d time.Duration) {
	if d >= 0 {
		s.batchPause = d
	}
}

// SetProgress sets an optional progress receiver.
func (s *PipelineService) SetProgress(p driving.Progress) {
	s.progress = p
}

// Run executes the pipeline for one user.
//
// Failure policy follows the pipeline's partial-success contract: a batch
// that yields no suggestions is counted and skipped, never fatal; a fetch
// cut short still proceeds with what was accumulated. Only conditions that
// leave nothing to classify return an error.
func (s *PipelineService) Run(ctx context.Context, user string) (*domain.RunSummary, error) {
	if s.lister == nil {
		return nil, errors.New("star lister not configured")
	}
	if s.classifier == nil {
		return nil, domain.ErrClassifierUnavailable
	}
	if user == "" {
		return nil, fmt.Errorf("%w: user must not be empty", domain.ErrInvalidInput)
	}

	summary := &domain.RunSummary{
		RunID:     uuid.New().String(),
		User:      user,
		StartedAt: time.Now(),
	}

	logger.Section("fetch")
	fetch, err := s.lister.ListStarred(ctx, user)
	if fetch == nil {
		fetch = &domain.FetchResult{}
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if len(fetch.Repos) == 0 {
			return nil, fmt.Errorf("fetch stars for %s: %w", user, err)
		}
		// Partial results are worth classifying; the summary records the gap.
		logger.Warn("fetch incomplete, continuing with %d repos: %v", len(fetch.Repos), err)
	}
	summary.Repos = fetch.Repos
	summary.FetchComplete = fetch.Complete
	if s.progress != nil {
		s.progress.Fetched(len(fetch.Repos), fetch.Complete)
	}
	if len(fetch.Repos) == 0 {
		return nil, fmt.Errorf("%w: %s has no starred repositories", domain.ErrNoRepositories, user)
	}

	batches, err := domain.SplitBatches(fetch.Repos, s.batchSize)
	if err != nil {
		return nil, err
	}
	summary.Batches = len(batches)

	s.beginReport(summary)

	logger.Section("classify")
	taxonomy := domain.NewTaxonomy()
	for i, batch := range batches {
		num := i + 1
		first := i == 0

		result, cerr := s.classifier.Classify(ctx, batch, taxonomy.Summaries(), first)
		if cerr != nil {
			if errors.Is(cerr, context.Canceled) || errors.Is(cerr, context.DeadlineExceeded) {
				return nil, cerr
			}
			// Degraded batch: swallow and continue. The uncategorized
			// report makes the gap visible.
			logger.Warn("batch %d/%d failed: %v", num, len(batches), cerr)
		}

		var suggestions []domain.CategorySuggestion
		if result != nil {
			suggestions = result.Suggestions
			s.writeExchange(num, result)
		}
		if len(suggestions) == 0 {
			summary.FailedBatches++
		}

		taxonomy.Merge(suggestions)
		logger.Info("batch %d/%d: %d suggestions, %d categories total", num, len(batches), len(suggestions), taxonomy.Len())
		if s.progress != nil {
			s.progress.BatchDone(num, len(batches), taxonomy.Len())
		}

		if num < len(batches) {
			if serr := sleepCtx(ctx, s.batchPause); serr != nil {
				return nil, serr
			}
		}
	}

	summary.Taxonomy = taxonomy
	summary.Uncategorized = taxonomy.Uncategorized(fetch.Repos)
	summary.FinishedAt = time.Now()

	s.writeTaxonomy(summary)

	return summary, nil
}

// beginReport opens the report store and persists the raw collection.
// Report failures are logged and swallowed; they never abort a run.
func (s *PipelineService) beginReport(summary *domain.RunSummary) {
	if s.reports == nil {
		return
	}
	if err := s.reports.Begin(summary.RunID, summary.User); err != nil {
		logger.Warn("report: begin failed: %v", err)
		return
	}
	if err := s.reports.WriteStars(summary.Repos); err != nil {
		logger.Warn("report: write stars failed: %v", err)
	}
}

func (s *PipelineService) writeExchange(batch int, result *domain.ClassificationResult) {
	if s.reports == nil {
		return
	}
	if err := s.reports.WriteExchange(batch, result.Prompt, result.RawResponse); err != nil {
		logger.Warn("report: write exchange %d failed: %v", batch, err)
	}
}

func (s *PipelineService) writeTaxonomy(summary *domain.RunSummary) {
	if s.reports == nil {
		return
	}
	if err := s.reports.WriteTaxonomy(summary); err != nil {
		logger.Warn("report: write taxonomy failed: %v", err)
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
