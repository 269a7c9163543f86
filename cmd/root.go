package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/grocery-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "grocery-cli",
	Short: "Recipe ingredient parsing and shopping list generation",
	Long:  "Parses free-text recipe ingredient lines, scales them by serving count, and merges ingredients across recipes into a deduplicated shopping list.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
