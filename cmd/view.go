package cmd

import (
	"github.com/spf13/cobra"

	"github.com/raestrada95/repotopdf/internal/domain"
	m "github.com/raestrada95/repotopdf/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view DIR",
		Short: "View the report of a previous conversion",
		Long:  "View the run report saved in a repository output directory by convert.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Dir: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
