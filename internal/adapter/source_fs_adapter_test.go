package adapter

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	m "github.com/raestrada95/repotopdf/internal/model"
)

func TestLocalSourceFSAdapter_ReadDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.md"), "# b\n")
	writeTestFile(t, filepath.Join(root, "a.md"), "# a\n")
	mustMkdir(t, filepath.Join(root, "c"))

	entries, err := adapter.ReadDir(ctx, m.Path(root))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	want := []string{"a.md", "b.md", "c"}
	if len(names) != len(want) {
		t.Fatalf("ReadDir() = %v, want %v", names, want)
	}

	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ReadDir() = %v, want sorted %v", names, want)
		}
	}

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		if _, err := adapter.ReadDir(cancelled, m.Path(root)); err == nil {
			t.Fatalf("ReadDir() expected context error")
		}
	})
}

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.pdf"), "pdf")

	nestedDir := filepath.Join(root, "nested")
	mustMkdir(t, nestedDir)
	child := filepath.Join(nestedDir, "child.pdf")
	writeTestFile(t, child, "pdf")

	var visited []string
	err := adapter.Walk(context.Background(), m.Path(root), func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if !containsPath(visited, child) {
		t.Fatalf("Walk() did not visit nested file")
	}

	t.Run("skip dir", func(t *testing.T) {
		var seen []string
		err := adapter.Walk(context.Background(), m.Path(root), func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() && path == nestedDir {
				return ErrSkipDir
			}
			seen = append(seen, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if containsPath(seen, child) {
			t.Fatalf("Walk() visited %s inside a skipped directory", child)
		}
	})
}

func TestLocalSourceFSAdapter_FileInfoAndIsDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	root := t.TempDir()
	path := filepath.Join(root, "index.md")
	writeTestFile(t, path, "# index\n")

	info, err := adapter.FileInfo(ctx, m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	if adapter.IsDir(ctx, m.Path(path)) {
		t.Fatalf("IsDir() = true for a regular file")
	}

	if !adapter.IsDir(ctx, m.Path(root)) {
		t.Fatalf("IsDir() = false for a directory")
	}

	if adapter.IsDir(ctx, m.Path(filepath.Join(root, "missing"))) {
		t.Fatalf("IsDir() = true for a missing path")
	}
}

func TestLocalSourceFSAdapter_MkdirAllIsIdempotent(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	for i := 0; i < 2; i++ {
		if err := adapter.MkdirAll(ctx, m.Path(dir)); err != nil {
			t.Fatalf("MkdirAll() call %d error = %v", i, err)
		}
	}

	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("MkdirAll() did not create %s", dir)
	}
}

func TestLocalSourceFSAdapter_CreateTempDirAndRemoveAll(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	tmp, err := adapter.CreateTempDir(ctx, "repotopdf-test-*")
	if err != nil {
		t.Fatalf("CreateTempDir() error = %v", err)
	}

	if fi, err := os.Stat(string(tmp)); err != nil || !fi.IsDir() {
		t.Fatalf("CreateTempDir() did not create directory, stat err=%v", err)
	}

	filePath := filepath.Join(string(tmp), "file.md")
	writeTestFile(t, filePath, "# file\n")

	if err := adapter.Remove(ctx, m.Path(filePath)); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if err := adapter.Remove(ctx, m.Path(filePath)); err != nil {
		t.Fatalf("Remove() of a missing file error = %v", err)
	}

	if err := adapter.RemoveAll(ctx, tmp); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	if _, err := os.Stat(string(tmp)); !os.IsNotExist(err) {
		t.Fatalf("RemoveAll() did not remove directory, stat err=%v", err)
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	base := m.Path("/tmp/repo/docs")
	target := m.Path("/tmp/repo/docs/guide/intro.md")

	rel, err := adapter.RelPath(ctx, base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("guide", "intro.md") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("guide", "intro.md"))
	}

	joined := adapter.JoinPath(ctx, "/tmp", "out", "guide", "intro.pdf")
	if string(joined) != filepath.Join("/tmp", "out", "guide", "intro.pdf") {
		t.Fatalf("JoinPath() = %s", joined)
	}

	abs, err := adapter.Abs(ctx, m.Path("relative/dir"))
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}

	if !filepath.IsAbs(string(abs)) {
		t.Fatalf("Abs() = %s, want absolute path", abs)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
