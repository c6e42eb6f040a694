package app

import (
	"context"

	"github.com/example/navcsv/internal/core/catalog"
	"github.com/example/navcsv/internal/core/tactic"
	"github.com/example/navcsv/internal/models"
	"github.com/example/navcsv/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockCatalogStore implements secondary.CatalogStore in memory.
type mockCatalogStore struct {
	records   []models.TechniqueRecord
	saved     bool
	existsErr error
	saveErr   error
	loadErr   error
	saveCalls int
}

func (m *mockCatalogStore) Exists(ctx context.Context) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.saved, nil
}

func (m *mockCatalogStore) Save(ctx context.Context, records []models.TechniqueRecord) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = records
	m.saved = true
	return nil
}

func (m *mockCatalogStore) Load(ctx context.Context) ([]models.TechniqueRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if !m.saved {
		return nil, secondary.ErrCatalogNotFound
	}
	return m.records, nil
}

func (m *mockCatalogStore) Location() string {
	return "mem://techniques.json"
}

// mockAttackSource implements secondary.AttackSource.
type mockAttackSource struct {
	bundle *catalog.Bundle
	err    error
	calls  int
}

func (m *mockAttackSource) FetchBundle(ctx context.Context) (*catalog.Bundle, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.bundle, nil
}

// mockLayerReader implements secondary.LayerReader.
type mockLayerReader struct {
	layer *models.Layer
	err   error
}

func (m *mockLayerReader) ReadLayer(ctx context.Context, path string) (*models.Layer, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.layer, nil
}

// mockGridWriter implements secondary.GridWriter and records what it was given.
type mockGridWriter struct {
	ext   string
	err   error
	paths []string
	grids []tactic.Grid
}

func (m *mockGridWriter) Extension() string {
	return m.ext
}

func (m *mockGridWriter) WriteGrid(ctx context.Context, path string, grid tactic.Grid) error {
	if m.err != nil {
		return m.err
	}
	m.paths = append(m.paths, path)
	m.grids = append(m.grids, grid)
	return nil
}
