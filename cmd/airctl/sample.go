package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"airscore-backend/internal/catalog"
)

//nolint:gochecknoglobals // Cobra boilerplate
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the sample profile as YAML",
	RunE:  runSample,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) (err error) {
	in := profileFile{
		Occupation: catalog.SampleOccupation,
		Profile:    catalog.SampleProfile(),
		Skills:     catalog.SampleSkills(),
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	err = enc.Encode(in)
	if err != nil {
		err = errors.Wrap(err, "failed to encode sample profile")
		return err
	}
	err = enc.Close()
	return err
}
