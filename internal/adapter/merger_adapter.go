package adapter

import (
	"context"
	"log/slog"

	"github.com/raestrada95/repotopdf/internal/logfields"
	m "github.com/raestrada95/repotopdf/internal/model"
)

// DefaultMergerCommand is the multi-artifact merger used when none is configured.
const DefaultMergerCommand = "pdftk"

// defaultMergerArgs matches `pdftk in1.pdf in2.pdf cat output out.pdf compress`.
var defaultMergerArgs = []string{placeholderInputs, "cat", "output", placeholderOutput, "compress"}

// MergerAdapter abstracts the external multi-artifact merger.
type MergerAdapter interface {
	// Merge combines inputs, in order, into output.
	Merge(ctx context.Context, inputs []m.Path, output m.Path) (ProcessOutput, error)
}

// LocalMergerAdapter runs a merger binary through os/exec.
type LocalMergerAdapter struct {
	command string
	args    []string
}

// NewLocalMergerAdapter constructs a merger running command with an argument
// template using {inputs} and {output}. The template defaults to the pdftk form.
func NewLocalMergerAdapter(command string, args ...string) *LocalMergerAdapter {
	if command == "" {
		command = DefaultMergerCommand
	}

	if len(args) == 0 {
		args = defaultMergerArgs
	}

	return &LocalMergerAdapter{command: command, args: args}
}

// Merge invokes the merger once with every input.
func (a *LocalMergerAdapter) Merge(ctx context.Context, inputs []m.Path, output m.Path) (ProcessOutput, error) {
	paths := make([]string, 0, len(inputs))
	for _, input := range inputs {
		paths = append(paths, string(input))
	}

	args := expandArgs(a.args, paths, string(output))
	slog.Debug("Running merger", logfields.Command(CommandLine(a.command, args...)), logfields.Count(len(inputs)))

	return runCommand(ctx, a.command, args...)
}
