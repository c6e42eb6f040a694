package primary

import (
	"context"

	"github.com/example/navcsv/internal/models"
)

// CatalogService defines the primary port for the technique catalog.
type CatalogService interface {
	// EnsureCatalog fetches and persists the catalog unless it already exists.
	EnsureCatalog(ctx context.Context, req EnsureCatalogRequest) (*EnsureCatalogResponse, error)

	// Lookup returns the catalog record for a technique ID.
	Lookup(ctx context.Context, techniqueID string) (*models.TechniqueRecord, error)
}

// EnsureCatalogRequest contains parameters for refreshing the catalog.
type EnsureCatalogRequest struct {
	// Force fetches even when a catalog is already stored.
	Force bool
}

// EnsureCatalogResponse contains the result of EnsureCatalog.
type EnsureCatalogResponse struct {
	Skipped  bool   // catalog already existed, nothing fetched
	Written  int    // records persisted (0 when skipped)
	Location string // where the catalog lives
}
