// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tracker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/story-engine/pkg/types"
)

// exportDoc is the on-disk YAML snapshot of the tracker: the full dashboard
// plus the raw recorded counts, so the flat file stands alone without the
// database.
type exportDoc struct {
	ExportedAt time.Time              `yaml:"exported_at"`
	Report     types.Report           `yaml:"report"`
	Counts     []types.SceneWordCount `yaml:"counts"`
}

// ExportPath returns the default export file location for the store.
func (s *Store) ExportPath() string {
	return filepath.Join(s.dataDir, indexDir, exportFile)
}

// ExportYAML writes the tracker snapshot to path (the default export path
// when path is empty). Called after every mutating command so the flat file
// tracks the database.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	if path == "" {
		path = s.ExportPath()
	}

	counts, err := s.Counts(ctx)
	if err != nil {
		return err
	}

	doc := exportDoc{
		ExportedAt: time.Now().UTC(),
		Report:     BuildReport(counts),
		Counts:     counts,
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
