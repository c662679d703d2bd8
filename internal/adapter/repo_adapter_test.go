package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/raestrada95/repotopdf/internal/model"
)

// initRepo creates a local repository with one committed docs page.
func initRepo(t *testing.T) string {
	t.Helper()

	repoDir := filepath.Join(t.TempDir(), "remote")
	mustMkdir(t, filepath.Join(repoDir, "docs"))
	writeTestFile(t, filepath.Join(repoDir, "docs", "page.md"), "# Page\n")

	repo, err := git.PlainInit(repoDir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	_, err = wt.Add("docs/page.md")
	require.NoError(t, err)

	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return repoDir
}

func TestLocalRepoAdapter_Clone(t *testing.T) {
	remote := initRepo(t)
	dest := filepath.Join(t.TempDir(), "clone")

	err := NewLocalRepoAdapter(0).Clone(context.Background(), remote, m.Path(dest))
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dest, "docs", "page.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Page\n", string(content))
}

func TestLocalRepoAdapter_Clone_Missing(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "clone")

	err := NewLocalRepoAdapter(0).Clone(context.Background(), filepath.Join(t.TempDir(), "nope"), m.Path(dest))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCloneFailed)
}

func TestClassifyCloneError(t *testing.T) {
	err := classifyCloneError("https://example.com/o/r", transport.ErrRepositoryNotFound)
	assert.ErrorIs(t, err, ErrCloneFailed)
	assert.ErrorIs(t, err, transport.ErrRepositoryNotFound)
	assert.Contains(t, err.Error(), "not found")

	err = classifyCloneError("https://example.com/o/r", transport.ErrAuthenticationRequired)
	assert.Contains(t, err.Error(), "requires authentication")

	err = classifyCloneError("u", errors.New("boom"))
	assert.ErrorIs(t, err, ErrCloneFailed)
	assert.Contains(t, err.Error(), "boom")
}

func TestNewLocalRepoAdapter_NegativeDepth(t *testing.T) {
	assert.Equal(t, 0, NewLocalRepoAdapter(-3).depth)
}
