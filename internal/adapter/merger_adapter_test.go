package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/raestrada95/repotopdf/internal/model"
)

// concatMerger writes the concatenation of every input to the output.
func concatMerger() *LocalMergerAdapter {
	return NewLocalMergerAdapter("sh", "-c", `out="$1"; shift; cat "$@" > "$out"`, "merge", "{output}", "{inputs}")
}

func TestLocalMergerAdapter_Merge_PreservesOrder(t *testing.T) {
	root := t.TempDir()

	var inputs []m.Path
	for _, name := range []string{"b.pdf", "a.pdf", "c.pdf"} {
		path := filepath.Join(root, name)
		writeTestFile(t, path, name+"\n")
		inputs = append(inputs, m.Path(path))
	}

	output := filepath.Join(root, "merged.pdf")

	_, err := concatMerger().Merge(context.Background(), inputs, m.Path(output))
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "b.pdf\na.pdf\nc.pdf\n", string(content))
}

func TestLocalMergerAdapter_Merge_SpecialCharacters(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "it's a \"dir\" $HOME")
	mustMkdir(t, dir)

	input := filepath.Join(dir, "o'brien; rm -rf.pdf")
	writeTestFile(t, input, "content\n")
	output := filepath.Join(dir, "merged 'docs'.pdf")

	_, err := concatMerger().Merge(context.Background(), []m.Path{m.Path(input)}, m.Path(output))
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "content\n", string(content))
}

func TestLocalMergerAdapter_Merge_Failure(t *testing.T) {
	merger := NewLocalMergerAdapter("sh", "-c", `echo "corrupt input" >&2; exit 1`)

	_, err := merger.Merge(context.Background(), []m.Path{"a.pdf"}, "out.pdf")
	require.Error(t, err)

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, 1, procErr.ExitCode)
	assert.Contains(t, procErr.Error(), "corrupt input")
}

func TestExpandArgs(t *testing.T) {
	got := expandArgs(defaultMergerArgs, []string{"a.pdf", "b.pdf"}, "out.pdf")
	assert.Equal(t, []string{"a.pdf", "b.pdf", "cat", "output", "out.pdf", "compress"}, got)

	got = expandArgs([]string{"--in={input}", "{output}"}, []string{"x.md"}, "x.pdf")
	assert.Equal(t, []string{"--in=x.md", "x.pdf"}, got)
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "pdftk a.pdf cat", CommandLine("pdftk", "a.pdf", "cat"))
	assert.Equal(t, `pdftk 'my docs.pdf'`, CommandLine("pdftk", "my docs.pdf"))
	assert.Contains(t, CommandLine("pdftk", "o'brien.pdf"), "brien.pdf")
}
