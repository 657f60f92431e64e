package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"toy-sales-report/models"
)

// TextWriter writes the rendered report to a plain-text file, replacing any
// previous contents. Intermediate directories are created automatically.
type TextWriter struct {
	path string
}

// NewTextWriter returns a TextWriter for path.
func NewTextWriter(path string) *TextWriter {
	return &TextWriter{path: path}
}

func (w *TextWriter) Write(_ context.Context, _ *models.Report, text string) error {
	if err := ensureDir(w.path); err != nil {
		return err
	}
	if err := os.WriteFile(w.path, []byte(text), 0644); err != nil {
		return fmt.Errorf("report: write %q: %w", w.path, err)
	}
	return nil
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("report: create output dir: %w", err)
	}
	return nil
}
