package cmd

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raestrada95/repotopdf/internal/domain"
	m "github.com/raestrada95/repotopdf/internal/model"
)

// errMissingSource is returned when neither --url nor a positional source is given.
var errMissingSource = errors.New("a source is required: pass --url or a positional argument")

var convertURLFlag string
var convertOutputFlag string
var convertCleanFlag bool
var convertParallelFlag string
var convertRecursiveFlag bool
var convertDocsPathFlag string
var convertSortFlag bool
var convertMetricsFileFlag string

const convertLongDescription = `Convert the documentation of a repository to PDF.

The source is a git clone URL or an existing local directory. Documentation
folders are found by name (default "docs"); a known-roots entry or --docs-path
selects a folder directly. Every Markdown file is converted with up to
--parallel converter processes, the outputs mirror the source layout under
<output>/<owner>-<name>, and the results are merged into
<owner>_<name>_docs.pdf.`

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert [source]",
		Short:   "Convert a repository's documentation to a merged PDF",
		Long:    convertLongDescription,
		Example: "  repotopdf convert -u https://github.com/sveltejs/svelte.git\n  repotopdf convert ./my-project -r -p 8",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := resolveSource(convertURLFlag, args)
			if err != nil {
				return err
			}

			parallel, err := domain.ParseParallel(viper.GetString(parallelConfigKey))
			if err != nil {
				return err
			}

			return workflow.Convert(cmd.Context(), domain.ConvertArgs{
				Source:      source,
				Output:      m.Path(viper.GetString(outputConfigKey)),
				Parallel:    parallel,
				Clean:       viper.GetBool(cleanConfigKey),
				Recursive:   viper.GetBool(recursiveConfigKey),
				DocsPath:    m.Path(viper.GetString(docsPathConfigKey)),
				SortOutputs: viper.GetBool(sortConfigKey),
				MetricsFile: m.Path(viper.GetString(metricsFileConfigKey)),
			})
		},
	}

	configureConvertFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

// configureConvertFlags declares the flags with the built-in defaults. Package
// level commands are built before the config file is read, so config and env
// values reach RunE through the viper bindings instead.
func configureConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&convertURLFlag, urlFlagName, "u", "", "repository clone URL or local directory")

	cmd.Flags().StringVarP(&convertOutputFlag, outputFlagName, "o", defaultOutputDir, "output directory")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().BoolVarP(&convertCleanFlag, cleanFlagName, "c", defaultClean, "remove intermediate PDFs once the merged PDF exists")
	bindFlagToConfig(cmd.Flags().Lookup(cleanFlagName), cleanConfigKey)

	cmd.Flags().StringVarP(&convertParallelFlag, parallelFlagName, "p", strconv.Itoa(domain.DefaultParallel), "maximum number of concurrent conversions")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	configureDiscoveryFlags(cmd, &convertRecursiveFlag, &convertDocsPathFlag)
	bindFlagToConfig(cmd.Flags().Lookup(recursiveFlagName), recursiveConfigKey)
	bindFlagToConfig(cmd.Flags().Lookup(docsPathFlagName), docsPathConfigKey)

	cmd.Flags().BoolVar(&convertSortFlag, sortFlagName, defaultSort, "merge each folder's PDFs in path order instead of completion order")
	bindFlagToConfig(cmd.Flags().Lookup(sortFlagName), sortConfigKey)

	cmd.Flags().StringVar(&convertMetricsFileFlag, metricsFileFlagName, "", "write Prometheus text-format metrics for the run to this file")
	bindFlagToConfig(cmd.Flags().Lookup(metricsFileFlagName), metricsFileConfigKey)
}

// configureDiscoveryFlags registers the flags shared by convert and discover.
func configureDiscoveryFlags(cmd *cobra.Command, recursive *bool, docsPath *string) {
	cmd.Flags().BoolVarP(recursive, recursiveFlagName, "r", defaultRecursive, "convert every matching documentation folder, not only the first")
	cmd.Flags().StringVarP(docsPath, docsPathFlagName, "d", "", "documentation folder relative to the repository root")
}

// resolveSource prefers the --url flag over a positional argument.
func resolveSource(urlFlag string, args []string) (string, error) {
	if source := strings.TrimSpace(urlFlag); source != "" {
		return source, nil
	}

	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0]), nil
	}

	return "", errMissingSource
}
