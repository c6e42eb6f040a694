package secondary

import (
	"context"
	"errors"

	"github.com/example/navcsv/internal/core/catalog"
	"github.com/example/navcsv/internal/models"
)

// ErrCatalogNotFound is returned by CatalogStore.Load when nothing has been saved yet.
var ErrCatalogNotFound = errors.New("technique catalog not found (run with --fetch-techniques)")

// CatalogStore defines the secondary port for catalog persistence.
type CatalogStore interface {
	// Exists reports whether a catalog has been saved.
	Exists(ctx context.Context) (bool, error)

	// Save replaces the stored catalog with records, preserving order.
	Save(ctx context.Context, records []models.TechniqueRecord) error

	// Load returns the stored catalog in saved order.
	Load(ctx context.Context) ([]models.TechniqueRecord, error)

	// Location describes where the catalog lives, for messages.
	Location() string
}

// AttackSource defines the secondary port for retrieving the ATT&CK STIX bundle.
type AttackSource interface {
	FetchBundle(ctx context.Context) (*catalog.Bundle, error)
}
