package cmd

import (
	"github.com/spf13/cobra"
)

// knownCmd represents the known command.
var knownCmd = newKnownCmd()

func newKnownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "known",
		Short: "List repositories with a known documentation folder",
		Long: `List the repositories whose documentation folder is known in advance.
Entries from the known_roots config map extend or override the built-in table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Known(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(knownCmd)
}
