package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"airscore-backend/internal/evaluations"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	simulateProfile    string
	simulatePathway    string
	simulateCompletion float64
	simulateMastery    float64
)

//nolint:gochecknoglobals // Cobra boilerplate
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project the effect of a learning pathway on a profile",
	Long: `Evaluates the profile, applies the pathway scaled by completion and
mastery, and prints the current, projected, and delta snapshots.

Examples:
  airctl simulate --profile profile.yaml --pathway "Human-AI Collaboration"
  airctl simulate --profile profile.yaml --pathway "AI for Financial Analysis" --completion 0.5`,
	RunE: runSimulate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVar(&simulateProfile, "profile", "", "YAML profile file")
	simulateCmd.Flags().StringVar(&simulatePathway, "pathway", "", "Learning pathway name")
	simulateCmd.Flags().Float64Var(&simulateCompletion, "completion", 1, "Completion fraction on [0,1]")
	simulateCmd.Flags().Float64Var(&simulateMastery, "mastery", 1, "Mastery fraction on [0,1]")
}

func runSimulate(cmd *cobra.Command, args []string) (err error) {
	in, err := loadProfile(simulateProfile)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	sim, err := svc.Simulate(commandContext(), evaluations.SimulateInput{
		Pathway:    simulatePathway,
		Completion: &simulateCompletion,
		Mastery:    &simulateMastery,
		Evaluation: &in,
	})
	if err != nil {
		err = errors.Wrap(err, "simulation failed")
		return err
	}
	err = printJSON(cmd.OutOrStdout(), sim)
	return err
}
