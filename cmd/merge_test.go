package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/raestrada95/repotopdf/internal/domain"
	m "github.com/raestrada95/repotopdf/internal/model"
)

func TestMergeCmd_DefaultDestination(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newMergeCmd())

	mockWorkflow.EXPECT().Merge(mock.Anything, domain.MergeArgs{Dir: m.Path("output/acme-widgets")}).Return(nil).Once()

	cmd.SetArgs([]string{"merge", "output/acme-widgets"})
	require.NoError(t, cmd.Execute())
}

func TestMergeCmd_CustomDestination(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newMergeCmd())

	mockWorkflow.EXPECT().Merge(mock.Anything, domain.MergeArgs{
		Dir:         m.Path("pdfs"),
		Destination: m.Path("book.pdf"),
	}).Return(nil).Once()

	cmd.SetArgs([]string{"merge", "pdfs", "-f", "book.pdf"})
	require.NoError(t, cmd.Execute())
}

func TestMergeCmd_RequiresDir(t *testing.T) {
	cmd, _ := newTestRootCmd(t, newMergeCmd())

	cmd.SetArgs([]string{"merge"})
	require.Error(t, cmd.Execute())
}

func TestMergeCmd_NothingToMerge(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newMergeCmd())

	mockWorkflow.EXPECT().Merge(mock.Anything, mock.Anything).Return(domain.ErrNothingToMerge).Once()

	cmd.SetArgs([]string{"merge", "empty"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrNothingToMerge)
}
