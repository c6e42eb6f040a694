package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/navcsv/internal/core/catalog"
	"github.com/example/navcsv/internal/models"
	"github.com/example/navcsv/internal/ports/primary"
	"github.com/example/navcsv/internal/ports/secondary"
)

// CatalogServiceImpl implements the CatalogService interface.
type CatalogServiceImpl struct {
	source secondary.AttackSource
	store  secondary.CatalogStore
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService with injected dependencies.
func NewCatalogService(source secondary.AttackSource, store secondary.CatalogStore, logger *zap.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		source: source,
		store:  store,
		logger: logger,
	}
}

// EnsureCatalog fetches the ATT&CK bundle and stores the projected catalog.
// An existing catalog short-circuits the fetch unless req.Force is set.
func (s *CatalogServiceImpl) EnsureCatalog(ctx context.Context, req primary.EnsureCatalogRequest) (*primary.EnsureCatalogResponse, error) {
	location := s.store.Location()

	if !req.Force {
		exists, err := s.store.Exists(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check catalog: %w", err)
		}
		if exists {
			s.logger.Debug("catalog present, skipping fetch", zap.String("location", location))
			return &primary.EnsureCatalogResponse{Skipped: true, Location: location}, nil
		}
	}

	s.logger.Info("fetching remote ATT&CK data")
	bundle, err := s.source.FetchBundle(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("parsing ATT&CK data", zap.Int("objects", len(bundle.Objects)))
	records, err := catalog.Project(bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ATT&CK data: %w", err)
	}

	if err := s.store.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save catalog: %w", err)
	}
	s.logger.Info("catalog written", zap.Int("records", len(records)), zap.String("location", location))

	return &primary.EnsureCatalogResponse{
		Written:  len(records),
		Location: location,
	}, nil
}

// Lookup returns the first catalog record with the given technique ID.
func (s *CatalogServiceImpl) Lookup(ctx context.Context, techniqueID string) (*models.TechniqueRecord, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	record, err := catalog.NewIndex(records).Lookup(techniqueID)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Ensure CatalogServiceImpl implements the interface.
var _ primary.CatalogService = (*CatalogServiceImpl)(nil)
