package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ProcessOutput holds the two output channels of an external invocation.
type ProcessOutput struct {
	Stdout string
	Stderr string
}

// ProcessError reports an external command that could not start or exited
// with a nonzero status.
type ProcessError struct {
	Command  string // shell-quoted command line
	ExitCode int    // -1 when the process never ran
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	var b strings.Builder

	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, "%s: exit status %d", e.Command, e.ExitCode)
	} else {
		fmt.Fprintf(&b, "%s: %v", e.Command, e.Err)
	}

	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		b.WriteString(": ")
		b.WriteString(stderr)
	}

	return b.String()
}

func (e *ProcessError) Unwrap() error { return e.Err }

// CommandLine renders name and args as a single POSIX shell command line.
// Arguments that cannot be quoted are rendered with %q.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)

	for _, arg := range append([]string{name}, args...) {
		quoted, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			quoted = fmt.Sprintf("%q", arg)
		}

		parts = append(parts, quoted)
	}

	return strings.Join(parts, " ")
}

// runCommand executes name with args, capturing stdout and stderr separately.
// No shell is involved, so arguments reach the process verbatim.
func runCommand(ctx context.Context, name string, args ...string) (ProcessOutput, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := ProcessOutput{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return output, nil
	}

	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return output, &ProcessError{
		Command:  CommandLine(name, args...),
		ExitCode: exitCode,
		Stderr:   output.Stderr,
		Err:      err,
	}
}

// expandArgs substitutes the {input}, {output} and {inputs} placeholders of an
// argument template. {inputs} must be a whole argument and expands to one
// argument per input.
func expandArgs(template []string, inputs []string, output string) []string {
	input := ""
	if len(inputs) > 0 {
		input = inputs[0]
	}

	args := make([]string, 0, len(template)+len(inputs))

	for _, arg := range template {
		if arg == placeholderInputs {
			args = append(args, inputs...)
			continue
		}

		arg = strings.ReplaceAll(arg, placeholderInput, input)
		arg = strings.ReplaceAll(arg, placeholderOutput, output)
		args = append(args, arg)
	}

	return args
}

const (
	placeholderInput  = "{input}"
	placeholderInputs = "{inputs}"
	placeholderOutput = "{output}"
)
