package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/iterkit/config"
	"github.com/kbukum/iterkit/itertools"
	"github.com/kbukum/iterkit/logger"
	"github.com/kbukum/iterkit/observability"
	"github.com/kbukum/iterkit/version"
)

// app holds state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg      *config.Config
	shutdown func(context.Context) error
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          serviceName,
		Short:        "Run lazy iterator combinators over arguments",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "set debug logging level")

	root.AddCommand(
		newPermutationsCmd(),
		newCombinationsCmd(),
		newProductCmd(),
		newIsliceCmd(),
		newCycleCmd(),
		newAccumulateCmd(),
		newGroupByCmd(),
		newTeeCmd(),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration and installs logging, package defaults and metrics.
func (a *app) setup(ctx context.Context) error {
	var opts []config.LoaderOption
	if a.configPath != "" {
		opts = append(opts, config.WithConfigFile(a.configPath))
	}
	cfg, err := config.Load(serviceName, opts...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	logger.Init(&cfg.Logging)
	logger.RegisterDefaults("itertools", serviceName)
	a.cfg = cfg

	if err := itertools.Configure(cfg.Itertools); err != nil {
		return fmt.Errorf("failed to configure itertools: %w", err)
	}

	if cfg.Metrics.Enabled {
		mp, err := observability.InitMeter(ctx, &cfg.Metrics)
		if err != nil {
			return fmt.Errorf("failed to init metrics: %w", err)
		}
		if err := itertools.SetMeterProvider(mp); err != nil {
			return fmt.Errorf("failed to install meter provider: %w", err)
		}
		a.shutdown = mp.Shutdown
	}

	logger.Get(serviceName).Debug("ready", logger.Fields(
		"version", version.Get().Short(),
		"tee_block_size", cfg.Itertools.TeeBlockSize,
		"metrics", cfg.Metrics.Enabled,
	))
	return nil
}

// close flushes metrics, if any were enabled.
func (a *app) close(ctx context.Context) {
	if a.shutdown == nil {
		return
	}
	if err := a.shutdown(ctx); err != nil {
		logger.Get(serviceName).Warn("metric shutdown failed", logger.Fields(logger.FieldError, err.Error()))
	}
	a.shutdown = nil
}
