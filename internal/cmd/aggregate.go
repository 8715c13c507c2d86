package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hostdni/host-aggregator/internal/aggregator"
	"github.com/hostdni/host-aggregator/internal/config"
	"github.com/hostdni/host-aggregator/internal/fetch"
	"github.com/hostdni/host-aggregator/internal/output"
)

var formatsFlag []string

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Fetch all sources and write the unified blocklist",
	Long: `Fetch every configured blocklist source in order, parse and filter the
hostnames, deduplicate them (first occurrence wins), and write a
timestamped dataset plus a latest.<ext> alias per requested format.

Examples:
  hostagg aggregate
  hostagg aggregate --formats csv,json
  hostagg aggregate --output-dir /var/lib/hostagg`,
	RunE: runAggregate,
}

func init() {
	rootCmd.AddCommand(aggregateCmd)

	aggregateCmd.Flags().StringSliceVar(&formatsFlag, "formats", nil,
		"output formats to generate, any subset of csv,json,yaml (default: all)")
}

func runAggregate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nhostagg shutting down...")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if verbose {
		cfg.Verbose = true
	}
	if cmd.Flags().Changed("formats") {
		if err := config.ValidateFormats(formatsFlag); err != nil {
			return err
		}
		cfg.Formats = formatsFlag
	}

	log.Printf("hostagg: starting aggregation of %d sources", len(cfg.Sources))

	client := fetch.NewClient(cfg.Timeout)
	agg := aggregator.New(client, cfg.Sources, cfg.Verbose)

	entries, stats, err := agg.Run(ctx)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}

	files, err := output.WriteAll(entries, cfg.OutputDir, cfg.Formats, time.Now())
	if err != nil {
		log.Printf("hostagg: %v", err)
		return err
	}

	output.NewSummary().Render(stats, files)
	log.Printf("hostagg: done, %d unique entries from %d parsed", stats.Unique, stats.TotalParsed)

	return nil
}
