package adapter

import (
	"context"
	"log/slog"

	"github.com/raestrada95/repotopdf/internal/logfields"
	m "github.com/raestrada95/repotopdf/internal/model"
)

// DefaultConverterCommand is the single-file converter used when none is configured.
const DefaultConverterCommand = "wkhtmltopdf"

// ConverterAdapter abstracts the external single-file converter.
type ConverterAdapter interface {
	// Convert turns input into output. The returned error is non-nil only when
	// the converter failed; diagnostics of a successful run are in Stderr.
	Convert(ctx context.Context, input, output m.Path) (ProcessOutput, error)
}

// LocalConverterAdapter runs a converter binary through os/exec.
type LocalConverterAdapter struct {
	command string
	args    []string
}

// NewLocalConverterAdapter constructs a converter running command. args is an
// argument template using {input} and {output}; it defaults to
// "{input} {output}".
func NewLocalConverterAdapter(command string, args ...string) *LocalConverterAdapter {
	if command == "" {
		command = DefaultConverterCommand
	}

	if len(args) == 0 {
		args = []string{placeholderInput, placeholderOutput}
	}

	return &LocalConverterAdapter{command: command, args: args}
}

// Convert runs the converter once for input.
func (a *LocalConverterAdapter) Convert(ctx context.Context, input, output m.Path) (ProcessOutput, error) {
	args := expandArgs(a.args, []string{string(input)}, string(output))
	slog.Debug("Running converter", logfields.Command(CommandLine(a.command, args...)))

	return runCommand(ctx, a.command, args...)
}
