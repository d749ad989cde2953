package cmd

import (
	"fmt"

	"github.com/grexie/labelnoise/pkg/dataset"
	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download <url> <filename> <md5>",
	Short: "Download a dataset archive and verify its checksum",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pw := newProgressWriter()
		go pw.Render()

		path, err := dataset.EnsureDownloaded(cmd.Context(), pw, args[0], params.DataDir, args[1], args[2])
		stopProgressWriter(pw)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVar(&params.DataDir, "dir", params.DataDir, "destination directory")
	rootCmd.AddCommand(downloadCmd)
}
