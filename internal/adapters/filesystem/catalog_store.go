// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/example/navcsv/internal/models"
	"github.com/example/navcsv/internal/ports/secondary"
)

// JSONCatalogStore implements secondary.CatalogStore as a single JSON array file.
type JSONCatalogStore struct {
	path string
}

// NewJSONCatalogStore creates a store backed by path (e.g. "techniques.json").
func NewJSONCatalogStore(path string) *JSONCatalogStore {
	return &JSONCatalogStore{path: path}
}

// Exists reports whether the catalog file is present.
func (s *JSONCatalogStore) Exists(ctx context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", s.path, err)
	}
	return true, nil
}

// Save overwrites the catalog file with records.
func (s *JSONCatalogStore) Save(ctx context.Context, records []models.TechniqueRecord) error {
	if records == nil {
		records = []models.TechniqueRecord{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Load reads the whole catalog file.
func (s *JSONCatalogStore) Load(ctx context.Context) ([]models.TechniqueRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", s.path, secondary.ErrCatalogNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var records []models.TechniqueRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return records, nil
}

// Location returns the catalog file path.
func (s *JSONCatalogStore) Location() string {
	return s.path
}

// Ensure JSONCatalogStore implements the interface.
var _ secondary.CatalogStore = (*JSONCatalogStore)(nil)
