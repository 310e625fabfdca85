package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"airscore-backend/internal/evaluations"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	compareProfile string
	compareJSON    bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank every catalog occupation for a profile",
	Long: `Scores the profile against each occupation and prints them ranked by AI-R.
The occupation in the profile file is ignored.`,
	RunE: runCompare,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareProfile, "profile", "", "YAML profile file")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Print JSON instead of a table")
}

func runCompare(cmd *cobra.Command, args []string) (err error) {
	in, err := loadProfile(compareProfile)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	ranked, err := svc.Compare(commandContext(), evaluations.CompareInput{
		Profile: in.Profile,
		Skills:  in.Skills,
		Params:  in.Params,
	})
	if err != nil {
		err = errors.Wrap(err, "comparison failed")
		return err
	}
	if compareJSON {
		err = printJSON(cmd.OutOrStdout(), ranked)
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tOCCUPATION\tAI-R\tV^R\tH^R\tSYNERGY")
	for _, c := range ranked {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.3f\t%.2f\t%.2f\n",
			c.Rank, c.Occupation, c.Snapshot.AIR, c.Snapshot.VR, c.Snapshot.HR, c.Snapshot.SynergyPercentage)
	}
	err = tw.Flush()
	return err
}
