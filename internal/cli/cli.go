package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rfagen/boston-concerts/internal/config"
	"github.com/rfagen/boston-concerts/internal/feed"
	"github.com/rfagen/boston-concerts/internal/storage"
	"github.com/rfagen/boston-concerts/internal/venue"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagOutput     string
	flagVerbose    bool
	flagIncludeHoB bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "boston-concerts",
		Short: "Aggregate Boston-area concert listings into a JSON feed",
		Long: `Fetches upcoming concert listings from several Boston-area venue
calendars, normalizes them into a common event record, and writes the
combined list to a single JSON file.`,
		RunE: runCollect,
	}

	// Define flags
	cmd.Flags().StringVar(&flagOutput, "output", cfg.OutputPath, "Path to the output JSON feed")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flagIncludeHoB, "include-hob", false, "Also fetch the House of Blues calendar")

	return cmd
}

// runCollect is the main command logic
func runCollect(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	logger, err := newLogger(flagVerbose || cfg.LogLevel == "debug")
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	adapters := feed.DefaultAdapters(logger)
	if flagIncludeHoB {
		adapters = append(adapters, venue.NewHouseOfBlues(logger))
	}

	events, err := feed.New(logger, adapters...).Collect()
	if err != nil {
		return fmt.Errorf("collecting events: %w", err)
	}

	store, err := storage.New(flagOutput)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	if err := store.WriteFeed(events); err != nil {
		return fmt.Errorf("saving feed: %w", err)
	}

	fmt.Printf("Wrote %d events to %s\n", len(events), store.Path())
	return nil
}

// newLogger builds the process logger. Verbose mode switches to the
// human-readable development encoder at debug level.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
