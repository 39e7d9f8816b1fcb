package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	runBatchSize int
	runOutputDir string
)

var runCmd = &cobra.Command{
	Use:   "run <github-user>",
	Short: "Fetch, classify, and merge a user's starred repositories",
	Long: `Fetches all starred repositories of the given GitHub user, submits them
to the configured LLM in batches, and merges the suggestions into one
taxonomy. Artifacts are written to a per-run directory under the output
directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runBatchSize, "batch-size", 0, "repositories per classification batch (overrides config)")
	runCmd.Flags().StringVar(&runOutputDir, "output", "", "artifact output directory (overrides config)")
	rootCmd.AddCommand(runCmd)
}

// cmdProgress prints pipeline milestones to the command's output.
type cmdProgress struct {
	cmd *cobra.Command
}

func (p cmdProgress) Fetched(repos int, complete bool) {
	if complete {
		p.cmd.Printf("Fetched %d starred repositories.\n", repos)
		return
	}
	p.cmd.Printf("Fetched %d starred repositories (incomplete listing).\n", repos)
}

func (p cmdProgress) BatchDone(batch, total, categories int) {
	p.cmd.Printf("Batch %d/%d classified, %d categories so far.\n", batch, total, categories)
}

func runRun(cmd *cobra.Command, args []string) error {
	user := args[0]
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runBatchSize > 0 {
		cfg.Run.BatchSize = runBatchSize
	}
	if runOutputDir != "" {
		cfg.Run.OutputDir = runOutputDir
	}

	p, err := buildPipeline(ctx, cfg, cmdProgress{cmd})
	if err != nil {
		return err
	}

	cmd.Printf("Classifying stars of %s...\n", user)
	summary, err := p.Run(ctx, user)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	cmd.Println()
	for _, c := range summary.Taxonomy.Categories() {
		cmd.Printf("  %-40s %d repos\n", c.Name, len(c.Repos))
	}
	cmd.Println()
	cmd.Printf("%d repositories in %d categories; %d uncategorized.\n",
		len(summary.Repos), summary.Taxonomy.Len(), len(summary.Uncategorized))
	if summary.FailedBatches > 0 {
		cmd.Printf("Warning: %d of %d batches produced no suggestions.\n", summary.FailedBatches, summary.Batches)
	}
	if !summary.FetchComplete {
		cmd.Println("Warning: star listing was incomplete; results cover a partial collection.")
	}
	printArtifactPath(cmd)

	return nil
}

// printArtifactPath reports where artifacts went, when a store is wired.
func printArtifactPath(cmd *cobra.Command) {
	if reportStore != nil && reportStore.Path() != "" {
		cmd.Printf("Artifacts written to %s\n", reportStore.Path())
	}
}
