// SPDX-License-Identifier: MIT

// Command bava reads artery tracings and reports their morphological and
// graph features.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/brainarterynetwork/bava/config"
	"github.com/brainarterynetwork/bava/internal/logging"
	"github.com/brainarterynetwork/bava/swc"
)

var (
	cfgPath    string
	logLevel   string
	threshold  float64
	jsonOutput bool

	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "bava <command>",
	Short:         "Brain artery vascular analysis",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			c.Log.Level = logLevel
		}
		if threshold > 0 {
			c.Parser.DistanceThreshold = threshold
		}
		if err := c.Validate(); err != nil {
			return err
		}

		l, closer, err := logging.New(c.Log, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		cfg, logger, logCloser = c, l, closer
		slog.SetDefault(l)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Float64Var(&threshold, "threshold", 0, "down-sampling distance (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(routeCmd)
}

// parseOptions maps the parser section onto tracing reader options.
func parseOptions() []swc.Option {
	return []swc.Option{
		swc.WithDistanceThreshold(cfg.Parser.DistanceThreshold),
		swc.WithTrailingPath(cfg.Parser.IncludeTrailingPath),
		swc.WithMaxPaths(cfg.Parser.MaxPaths),
		swc.WithLogger(logger),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
