package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var scoreProfile string

//nolint:gochecknoglobals // Cobra boilerplate
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Evaluate a YAML profile and print the AI-R breakdown as JSON",
	Long: `Evaluates the profile, occupation, and skills in a YAML file.

Examples:
  # Write the sample profile and score it
  airctl sample > profile.yaml
  airctl score --profile profile.yaml

  # Score against a custom catalog
  airctl score --profile profile.yaml --catalog catalog.yaml`,
	RunE: runScore,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scoreProfile, "profile", "", "YAML profile file")
}

func runScore(cmd *cobra.Command, args []string) (err error) {
	in, err := loadProfile(scoreProfile)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	ev, err := svc.Evaluate(commandContext(), in)
	if err != nil {
		err = errors.Wrap(err, "evaluation failed")
		return err
	}
	err = printJSON(cmd.OutOrStdout(), ev)
	return err
}
