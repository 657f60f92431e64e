package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"toy-sales-report/models"
)

// FileSource reads a catalog document from disk. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
type FileSource struct {
	path string
}

// NewFileSource returns a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the file. A file that cannot be read is an I/O
// error; a file that cannot be decoded is models.ErrMalformedInput.
func (s *FileSource) Load(_ context.Context) (*models.RawCatalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", s.path, err)
	}
	return DecodeCatalog(data, filepath.Ext(s.path))
}

// Close is a no-op; the file is closed as soon as it has been read.
func (s *FileSource) Close() error { return nil }

// DecodeCatalog decodes a catalog document. ext selects the format the same
// way FileSource does.
func DecodeCatalog(data []byte, ext string) (*models.RawCatalog, error) {
	raw := &models.RawCatalog{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, raw); err != nil {
			return nil, fmt.Errorf("catalog: decode yaml: %w: %w", models.ErrMalformedInput, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(raw); err != nil {
			return nil, fmt.Errorf("catalog: decode json: %w: %w", models.ErrMalformedInput, err)
		}
	}
	return raw, nil
}
