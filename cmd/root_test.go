package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainmocks "github.com/raestrada95/repotopdf/internal/domain/mocks"
)

// newTestRootCmd builds a root command with subs attached, logging into a
// temporary file and with the package workflow replaced by a mock.
func newTestRootCmd(t *testing.T, subs ...*cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	setConfig(t, logFilenameKey, filepath.Join(t.TempDir(), "repotopdf.log"))

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })
	t.Cleanup(resetFlagBindings)

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(subs...)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow
}

// resetFlagBindings rebinds the config keys to fresh, unchanged flags so
// flag values set by one test do not leak into the next.
func resetFlagBindings() {
	configureRootFlags(newRootCmd())
	newConvertCmd()
}

// setConfig overrides a viper key for the duration of the test.
func setConfig(t *testing.T, key string, value any) {
	t.Helper()

	viper.Set(key, value)
	t.Cleanup(func() { viper.Set(key, nil) })
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "repotopdf", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotNil(t, cmd.PersistentPreRun)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd, _ := newTestRootCmd(t, newConvertCmd(), newKnownCmd())

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "documentation folders")
	assert.Contains(t, output.String(), "convert")
	assert.Contains(t, output.String(), "--verbose")
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"convert", "discover", "merge", "view", "known", "init", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, repoAdapter)
	assert.NotNil(t, converterAdapter)
	assert.NotNil(t, mergerAdapter)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, workflow)
}

func TestBindFlagToConfig(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("sample-flag", "from-flag", "")

	bindFlagToConfig(cmd.Flags().Lookup("sample-flag"), "test.sample")
	t.Cleanup(func() { viper.Set("test.sample", nil) })

	require.NoError(t, cmd.Flags().Set("sample-flag", "changed"))
	assert.Equal(t, "changed", viper.GetString("test.sample"))
}

func TestBuildVersion(t *testing.T) {
	assert.NotEmpty(t, buildVersion())
}

func TestExecute_WithError(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("command failed")
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// Execute would call os.Exit(1); verify the command itself errors.
	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		os.Args = []string{"test"}
		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		os.Args = []string{"test"}
		Execute() // This should call os.Exit(1)

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}
