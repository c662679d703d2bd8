// Package cmd provides the root command and CLI setup for repotopdf.
package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/raestrada95/repotopdf/internal/adapter"
	"github.com/raestrada95/repotopdf/internal/controller"
	"github.com/raestrada95/repotopdf/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var repoAdapter adapter.RepoAdapter
var converterAdapter adapter.ConverterAdapter
var mergerAdapter adapter.MergerAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// verboseFlag forces debug logging for every command.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	repoAdapter = adapter.NewLocalRepoAdapter(viper.GetInt(cloneDepthKey))
	converterAdapter = adapter.NewLocalConverterAdapter(
		viper.GetString(converterCommandKey),
		viper.GetStringSlice(converterArgsKey)...,
	)
	mergerAdapter = adapter.NewLocalMergerAdapter(
		viper.GetString(mergerCommandKey),
		viper.GetStringSlice(mergerArgsKey)...,
	)
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		repoAdapter,
		converterAdapter,
		mergerAdapter,
		reportStore,
		ui,
		workflowConfig(),
	)
}

const rootLongDescription = `repotopdf turns the documentation folders of a repository into PDFs.

It acquires a repository (clone URL or local directory), finds its
documentation folders, converts every Markdown file with an external
converter while mirroring the folder layout, and merges the results into
one PDF per repository.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repotopdf",
		Short: "Convert repository documentation to PDF",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Interrupt and termination signals cancel the command context.
func Execute() {
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(buildVersion()),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
	if err != nil {
		os.Exit(1)
	}
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "unknown"
	}

	return info.Main.Version
}
