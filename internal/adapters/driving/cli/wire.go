package cli

import (
	"context"
	"fmt"
	"time"

	cfgfile "github.com/custodia-labs/starcat-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/starcat-cli/internal/adapters/driven/llm/openai"
	promptfile "github.com/custodia-labs/starcat-cli/internal/adapters/driven/prompts/file"
	"github.com/custodia-labs/starcat-cli/internal/adapters/driven/report"
	"github.com/custodia-labs/starcat-cli/internal/connectors/github"
	"github.com/custodia-labs/starcat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/starcat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/starcat-cli/internal/core/services"
	"github.com/custodia-labs/starcat-cli/internal/logger"
)

// Injected services. Left nil in production and constructed on demand from
// configuration; tests swap these for mocks.
var (
	pipeline    driving.Pipeline
	starLister  driven.StarLister
	classifier  driven.Classifier
	reportStore driven.ReportStore
)

// loadConfig reads the config file named by --config, or the default
// location when the flag is unset.
func loadConfig() (*cfgfile.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = cfgfile.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return cfgfile.Load(path)
}

// resolveAdapters returns the test-injected adapters when set, and builds
// the real ones from configuration otherwise.
func resolveAdapters(ctx context.Context, cfg *cfgfile.Config) (driven.StarLister, driven.Classifier, driven.ReportStore, error) {
	if starLister != nil && classifier != nil {
		return starLister, classifier, reportStore, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	client := github.NewClient(ctx, cfg.GitHub.Token)
	lister := github.NewStarFetcher(client,
		github.WithPageSize(cfg.GitHub.PageSize),
		github.WithPageDelay(time.Duration(cfg.GitHub.PageDelayMS)*time.Millisecond),
	)

	cls, err := openai.NewClassifier(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("configure classifier: %w", err)
	}

	prompts, err := promptfile.NewPromptStore(cfg.Run.PromptDir, openai.DefaultPrompts())
	if err != nil {
		logger.Warn("prompt store unavailable, using embedded prompts: %v", err)
	} else {
		cls.SetPromptStore(prompts)
	}

	return lister, cls, report.NewFileStore(cfg.Run.OutputDir), nil
}

// buildPipeline wires a pipeline service from configuration, honouring a
// test-injected pipeline.
func buildPipeline(ctx context.Context, cfg *cfgfile.Config, progress driving.Progress) (driving.Pipeline, error) {
	if pipeline != nil {
		return pipeline, nil
	}

	lister, cls, reports, err := resolveAdapters(ctx, cfg)
	if err != nil {
		return nil, err
	}
	reportStore = reports

	svc := services.NewPipelineService(lister, cls, reports)
	svc.SetBatchSize(cfg.Run.BatchSize)
	svc.SetBatchPause(time.Duration(cfg.Run.BatchPauseMS) * time.Millisecond)
	svc.SetProgress(progress)
	return svc, nil
}
