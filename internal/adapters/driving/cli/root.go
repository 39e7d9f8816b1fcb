// Package cli implements the cobra command tree that drives the core.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/starcat-cli/internal/logger"
)

// version is set by Execute from the build's main package.
var version = "dev"

// Persistent flags.
var (
	configPath  string
	verboseMode bool
)

var rootCmd = &cobra.Command{
	Use:   "starcat",
	Short: "Categorise a user's starred GitHub repositories with an LLM",
	Long: `starcat fetches a GitHub user's starred repositories, submits them in
batches to an LLM, and merges the model's suggestions into one taxonomy.
Each run writes JSON artifacts, the prompt/response pair of every batch,
and an HTML report.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseMode)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.starcat/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "verbose logging to stderr")
}

// Execute runs the root command. Called once from main.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}
