// Package export optionally mirrors generated projects onto local disk so
// they can be inspected or served without unzipping.
package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"sitegen_ai_server/internal/types"
)

type Exporter struct {
	baseDir string
}

// NewExporter returns an exporter rooted at baseDir, or nil when exporting
// is disabled (empty baseDir). A nil *Exporter is safe to call.
func NewExporter(baseDir string) *Exporter {
	if baseDir == "" {
		return nil
	}
	return &Exporter{baseDir: baseDir}
}

// SaveFiles writes the generated tree under <baseDir>/<projectID>/. Files
// that fail to write are logged and skipped; the project as a whole only
// fails when the project directory itself cannot be created.
func (e *Exporter) SaveFiles(projectID string, files []types.GeneratedFile) error {
	if e == nil {
		return nil
	}

	projectDir := filepath.Join(e.baseDir, projectID)
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return fmt.Errorf("create project dir %s: %w", projectDir, err)
	}

	saved := 0
	for _, f := range files {
		path := filepath.Join(projectDir, filepath.FromSlash(f.Filename))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Printf("WARN: Failed to create directory for %s: %v", path, err)
			continue
		}
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			log.Printf("WARN: Failed to write file %s: %v", path, err)
			continue
		}
		saved++
	}

	log.Printf("Exported project %s: %d/%d files written to %s", projectID, saved, len(files), projectDir)
	return nil
}
