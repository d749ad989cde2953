package cmd

import (
	"context"
	"time"

	"github.com/grexie/labelnoise/pkg/db"
	"github.com/spf13/cobra"
)

var runsLimit int64

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded noisify runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		mdb, err := db.ConnectMongo(ctx, params.MongoURL)
		if err != nil {
			return err
		}
		defer mdb.Client().Disconnect(context.Background())

		runs, err := db.ListRuns(ctx, mdb, runsLimit)
		if err != nil {
			return err
		}
		db.WriteRuns(cmd.OutOrStdout(), runs)
		return nil
	},
}

func init() {
	runsCmd.Flags().Int64Var(&runsLimit, "limit", 20, "number of runs to show")
	rootCmd.AddCommand(runsCmd)
}
