// Package cli is the forwards command line: it ranks the built-in
// forwards, scores uploaded files offline and prints templates.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/laliga-forwards/internal/app"
	"github.com/riskibarqy/laliga-forwards/internal/config"
	"github.com/riskibarqy/laliga-forwards/internal/platform/logging"
)

type rootOptions struct {
	pointsPath string
	logLevel   string
	stderr     io.Writer
}

// NewRootCommand builds the forwards command tree. Command output goes to
// cmd.OutOrStdout(); logs and per-file failures go to stderr.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stderr: stderr}

	root := &cobra.Command{
		Use:   "forwards",
		Short: "Rank La Liga forwards by a configurable greatness score",
		Long: `forwards scores La Liga forwards from career and season records.

Points come from the default table unless --points names a YAML file.
Uploaded CSV or XLSX files are detected, validated and scored the same
way the HTTP API does it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.pointsPath, "points", "", "YAML points table (default: built-in table, or POINTS_TABLE_PATH)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newRankCommand(opts),
		newScoreCommand(opts),
		newTemplateCommand(),
		newDiagnoseCommand(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stderr)
	root.SetOut(stdout)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func (o *rootOptions) logger() (*logging.Logger, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  level,
		Format: logging.FormatConsole,
		Output: o.stderr,
	}), nil
}

// services loads the environment configuration, applies the command line
// overrides and wires the same use cases the API serves.
func (o *rootOptions) services(workers int) (app.Services, *logging.Logger, error) {
	logger, err := o.logger()
	if err != nil {
		return app.Services{}, nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return app.Services{}, nil, fmt.Errorf("load config: %w", err)
	}
	if o.pointsPath != "" {
		cfg.PointsTablePath = o.pointsPath
	}
	if workers > 0 {
		cfg.BatchWorkers = workers
	}
	cfg.MetricsEnabled = false

	services, err := app.NewServices(cfg, logger)
	if err != nil {
		return app.Services{}, nil, err
	}
	return services, logger, nil
}
