package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type cliOptions struct {
	configPath string
	jsonOut    bool
	verbose    bool
	workers    int
	noPrune    bool
}

// env is what every subcommand needs once flags and config are resolved.
type env struct {
	cfg     Config
	log     *slog.Logger
	reg     *prometheus.Registry
	metrics *Metrics
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:           "geode-optimizer",
		Short:         "Find the most geodes each robot factory blueprint can open",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file (defaults apply when empty)")
	pf.BoolVar(&opts.jsonOut, "json", false, "Output results as JSON")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every blueprint search to stderr")
	pf.IntVar(&opts.workers, "workers", 0, "Concurrent searches (0 = GOMAXPROCS)")
	pf.BoolVar(&opts.noPrune, "no-prune", false, "Disable the geode bound and obsidian cutoff")

	root.AddCommand(newSolveCmd(opts), newSimulateCmd(opts))
	return root
}

func newSolveCmd(opts *cliOptions) *cobra.Command {
	var part int
	cmd := &cobra.Command{
		Use:   "solve <input>",
		Short: "Compute the part one and part two answers",
		Long: `Compute the puzzle answers for a blueprint list.

Part one sums id × geodes over every blueprint. Part two multiplies the
geode counts of the first three blueprints with a longer time budget.
Use "-" to read the input from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if part < 0 || part > 2 {
				return fmt.Errorf("--part must be 0, 1 or 2, got %d", part)
			}
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			bps, err := LoadBlueprints(args[0])
			if err != nil {
				return err
			}
			e.log.Info("loaded blueprints", "count", len(bps), "input", args[0])

			runner := NewRunner(e.cfg, e.log, e.metrics)
			parts, err := runner.Run(cmd.Context(), bps, part)
			if err != nil {
				return err
			}
			logMetrics(e.log, e.reg)

			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), newRunOutput(parts, runner.workers()))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), FormatResult(parts))
			return err
		},
	}
	cmd.Flags().IntVar(&part, "part", 0, "Which part to run (0 = both)")
	return cmd
}

func newSimulateCmd(opts *cliOptions) *cobra.Command {
	var minutes uint32
	cmd := &cobra.Command{
		Use:   "simulate <input>",
		Short: "Search every blueprint with an arbitrary time budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			bps, err := LoadBlueprints(args[0])
			if err != nil {
				return err
			}

			runner := NewRunner(e.cfg, e.log, e.metrics)
			rs, err := runner.SimulateAll(cmd.Context(), bps, minutes)
			if err != nil {
				return err
			}
			logMetrics(e.log, e.reg)

			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), rs)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), FormatBlueprints(rs))
			return err
		},
	}
	cmd.Flags().Uint32VarP(&minutes, "minutes", "m", 24, "Time budget in minutes")
	return cmd
}

// setup resolves config (file, then flags) and builds the logger and metrics.
func setup(cmd *cobra.Command, opts *cliOptions) (*env, error) {
	cfg := DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = LoadConfig(opts.configPath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = opts.workers
	}
	if opts.noPrune {
		cfg.Pruning = PruningConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	return &env{
		cfg:     cfg,
		log:     newLogger(cmd.ErrOrStderr(), cfg.Log, opts.verbose),
		reg:     reg,
		metrics: NewMetrics(reg),
	}, nil
}

// logMetrics writes the gathered search counters at debug level.
func logMetrics(log *slog.Logger, reg prometheus.Gatherer) {
	mfs, err := reg.Gather()
	if err != nil {
		log.Warn("gather metrics", "error", err)
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			args := []any{"metric", mf.GetName()}
			if len(labels) > 0 {
				args = append(args, "labels", strings.Join(labels, ","))
			}
			switch {
			case m.GetCounter() != nil:
				args = append(args, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				args = append(args, "count", h.GetSampleCount(), "sum", h.GetSampleSum())
			}
			log.Debug("search metrics", args...)
		}
	}
}
