package cmd

import (
	"os"
	"time"

	"github.com/grexie/labelnoise/pkg/config"
	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/spf13/cobra"
)

// .env files are loaded before flags take their defaults from the environment.
var params = func() config.Params {
	config.LoadDefaultEnv()
	return config.NewParamsFromDefaults()
}()

var rootCmd = &cobra.Command{
	Use:           "labelnoise",
	Short:         "Synthesize label noise for classification datasets",
	Long:          `labelnoise corrupts ground-truth class labels with symmetric or pair-flip noise, or loads externally generated noisy labels.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&params.NoiseType, "type", params.NoiseType, "noise type: symmetric, pairflip or from_file")
	flags.IntVar(&params.Classes, "classes", params.Classes, "number of classes, 0 takes the count from --in")
	flags.Float64Var(&params.Rate, "rate", params.Rate, "noise rate")
	flags.Uint64Var(&params.Seed, "seed", params.Seed, "random seed")
	flags.BoolVar(&params.Lenient, "lenient", params.Lenient, "warn instead of failing when no label changes")
}

func Execute() error {
	return rootCmd.Execute()
}

func newProgressWriter() progress.Writer {
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stderr)
	pw.SetMessageLength(40)
	pw.SetNumTrackersExpected(1)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerLength(15)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample
	pw.Style().Options.PercentFormat = "%2.0f%%"
	return pw
}

func stopProgressWriter(pw progress.Writer) {
	pw.Stop()
	for pw.IsRenderInProgress() {
		time.Sleep(100 * time.Millisecond)
	}
}
