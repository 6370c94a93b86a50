package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/XwaeK/2024-assignment-pandas/internal/app"
	"github.com/XwaeK/2024-assignment-pandas/internal/config"
	"github.com/XwaeK/2024-assignment-pandas/internal/infrastructure"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Verbose    bool
	NoRender   bool
}

// NewRootCommand creates the root command. Running it without a subcommand
// executes the pipeline once.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Referendum results by region, as a table and a choropleth map",
		Long: `Aggregate town-level referendum ballots into regional totals.

Reads the ballot, region and department tables plus the region boundaries
from the data directory, prints the per-region table to stdout and writes
the choropleth PNG and optional CSV/XLSX exports to the output directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().BoolVar(&opts.NoRender, "no-render", false, "skip drawing the map image")

	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// LoadConfig applies the command-line overrides on top of the loaded
// configuration.
func LoadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		cfg.Logging.Level = "debug"
	}
	if opts.NoRender {
		cfg.Output.Render = false
	}
	return cfg, nil
}

func runPipeline(cmd *cobra.Command, opts *RootOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := LoadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	application, err := app.NewApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	application.Stdout = cmd.OutOrStdout()

	_, runErr := application.Run(ctx)
	if err := application.Close(ctx); err != nil {
		logger.WarnContext(ctx, "Telemetry shutdown failed", slog.String("error", err.Error()))
	}
	return runErr
}
