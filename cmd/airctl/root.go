package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"airscore-backend/internal/scoring"
	"airscore-backend/internal/shared/telemetry"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var catalogFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "airctl",
	Short: "Compute AI-Readiness scores and manage reference data",
	Long: `airctl evaluates individual profiles against the occupation catalog,
projects learning pathways, and imports or exports the catalog document.

Scoring commands use the built-in catalog unless --catalog points at a YAML
catalog document.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries command output, so logs go to stderr and only with -v.
		var logger *zap.Logger
		if verbose {
			logger, _ = zap.NewDevelopment()
		}
		telemetry.SetLogger(logger)

		if err := scoring.ValidateWeights(); err != nil {
			return errors.Wrap(err, "invalid scoring weights")
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	telemetry.Sync()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "YAML catalog document (default is the built-in catalog)")
}
