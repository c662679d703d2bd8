package cmd

import (
	"github.com/spf13/cobra"

	"github.com/raestrada95/repotopdf/internal/domain"
	m "github.com/raestrada95/repotopdf/internal/model"
)

var mergeFileFlag string

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge DIR",
		Short: "Merge the PDFs under a directory into one file",
		Long: `Merge every PDF under DIR, in path order, into a single file. The
destination defaults to DIR/<name of DIR>.pdf and is never merged into itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Merge(cmd.Context(), domain.MergeArgs{
				Dir:         m.Path(args[0]),
				Destination: m.Path(mergeFileFlag),
			})
		},
	}

	cmd.Flags().StringVarP(&mergeFileFlag, mergeFileFlagName, "f", "", "destination file")

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
