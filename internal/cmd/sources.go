package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostdni/host-aggregator/internal/config"
	"github.com/hostdni/host-aggregator/internal/output"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the configured blocklist sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		output.NewSummary().RenderSources(cfg.Sources)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
