package cmd

import (
	"fmt"

	"github.com/grexie/labelnoise/pkg/noise"
	"github.com/spf13/cobra"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the transition matrix for a noise type",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := noise.ParseNoiseType(params.NoiseType)
		if err != nil {
			return err
		}
		p, err := noise.BuildMatrix(t, params.Classes, params.Rate)
		if err != nil {
			return err
		}
		return noise.WriteMatrix(cmd.OutOrStdout(), fmt.Sprintf("%s noise, rate %0.04f", t, params.Rate), p)
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}
