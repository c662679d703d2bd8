package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raestrada95/repotopdf/internal/domain"
	m "github.com/raestrada95/repotopdf/internal/model"
)

var discoverURLFlag string
var discoverRecursiveFlag bool
var discoverDocsPathFlag string

// discoverCmd represents the discover command.
var discoverCmd = newDiscoverCmd()

func newDiscoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover [source]",
		Short: "List the documentation folders a conversion would process",
		Long: `Acquire a source and list the documentation folders that convert would
process, without converting anything. Cloned sources are removed afterwards.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := resolveSource(discoverURLFlag, args)
			if err != nil {
				return err
			}

			return workflow.Discover(cmd.Context(), domain.DiscoverArgs{
				Source:    source,
				Recursive: flagOrConfigBool(cmd, recursiveFlagName, discoverRecursiveFlag, recursiveConfigKey),
				DocsPath:  m.Path(flagOrConfigString(cmd, docsPathFlagName, discoverDocsPathFlag, docsPathConfigKey)),
			})
		},
	}

	cmd.Flags().StringVarP(&discoverURLFlag, urlFlagName, "u", "", "repository clone URL or local directory")
	configureDiscoveryFlags(cmd, &discoverRecursiveFlag, &discoverDocsPathFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

// flagOrConfigBool returns the flag value when it was set on the command line
// and the configured value otherwise. Used for flags whose config key is
// bound to another command.
func flagOrConfigBool(cmd *cobra.Command, name string, value bool, key string) bool {
	if cmd.Flags().Changed(name) {
		return value
	}

	return viper.GetBool(key)
}

func flagOrConfigString(cmd *cobra.Command, name, value, key string) string {
	if cmd.Flags().Changed(name) {
		return value
	}

	return viper.GetString(key)
}
