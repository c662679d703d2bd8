package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/raestrada95/repotopdf/internal/model"
)

// ReportFilename is the name of the run report written into an output directory.
const ReportFilename = "repotopdf-report.yaml"

// ErrReportNotFound is returned when a directory holds no run report.
var ErrReportNotFound = errors.New("run report not found")

// ReportStore persists run reports next to the artifacts they describe.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.RunReport) error
	LoadReport(ctx context.Context, dir m.Path) (m.RunReport, error)
}

// YAMLReportStore stores reports as YAML documents.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to dir/ReportFilename, replacing any previous one.
func (s *YAMLReportStore) SaveReport(_ context.Context, dir m.Path, report m.RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(string(dir), ReportFilename)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport reads the report stored in dir.
func (s *YAMLReportStore) LoadReport(_ context.Context, dir m.Path) (m.RunReport, error) {
	path := filepath.Join(string(dir), ReportFilename)

	// #nosec G304 - path is built from the user-selected output directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.RunReport{}, fmt.Errorf("%w: %s", ErrReportNotFound, path)
		}

		return m.RunReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}
