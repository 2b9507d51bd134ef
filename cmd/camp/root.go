package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"qcert/camp/pkg/camp/factory"
	"qcert/camp/pkg/cli"
	"qcert/camp/pkg/config"
	"qcert/camp/pkg/telemetry/logging"
	"qcert/camp/pkg/telemetry/metrics"
)

var (
	// Global flags
	cfgFile      string
	verbose      bool
	outputFormat string
)

// runtimeEnv holds what PersistentPreRunE builds for the subcommands.
type runtimeEnv struct {
	cfg       *config.Config
	logger    *slog.Logger
	registry  *prometheus.Registry
	factory   *factory.Factory
	formatter cli.Formatter
}

var env runtimeEnv

var rootCmd = &cobra.Command{
	Use:   "camp",
	Short: "CAMP AST inspection tool",
	Long: `camp inspects the AST layer of CAMP, the Calculus of Aggregating Matching
Patterns used as an intermediate representation by the rule compiler.

It can list the pattern operator tables, verify them, and build individual
pattern nodes to check parameter validation and canonical rendering.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setupEnv,
}

// Execute runs the root command and exits with the status cli.ExitCode
// assigns to its error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "camp.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "output format: text, json")
}

func setupEnv(cmd *cobra.Command, args []string) error {
	// The default config path is optional; an explicit one must exist.
	optional := !cmd.Flags().Changed("config")
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile, optional)
	if err != nil {
		return err
	}

	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}

	format, err := cli.ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Telemetry.Logging.Level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
		Writer:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}
	logger = logger.With("run_id", uuid.NewString(), "command", cmd.Name())

	registry := prometheus.NewRegistry()
	opts := []factory.Option{factory.WithLogger(logger)}
	if cfg.Telemetry.Metrics.IsEnabled() {
		opts = append(opts, factory.WithMetrics(metrics.NewConstructionMetrics(&cfg.Telemetry.Metrics, registry)))
	}

	env = runtimeEnv{
		cfg:       cfg,
		logger:    logger,
		registry:  registry,
		factory:   factory.New(opts...),
		formatter: cli.NewFormatter(format),
	}

	logger.Debug("configuration loaded", "config", cfgFile, "optional", optional, "output", format)
	return nil
}
