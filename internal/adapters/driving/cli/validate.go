package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check credentials for both endpoints",
	Long: `Verifies that the configured GitHub token and LLM API key work by
making a lightweight test call against each service. No stars are fetched
and no classification is run.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lister, cls, _, err := resolveAdapters(ctx, cfg)
	if err != nil {
		return err
	}

	if err := lister.Validate(ctx); err != nil {
		return fmt.Errorf("GitHub credentials: %w", err)
	}
	cmd.Println("GitHub credentials OK.")

	if err := cls.Ping(ctx); err != nil {
		return fmt.Errorf("LLM endpoint: %w", err)
	}
	cmd.Printf("LLM endpoint OK (model %s).\n", cls.ModelName())

	return nil
}
