package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/navcsv/internal/models"
	"github.com/example/navcsv/internal/ports/primary"
)

// CatalogAdapter translates catalog CLI operations to CatalogService calls.
type CatalogAdapter struct {
	service primary.CatalogService
	out     io.Writer
}

// NewCatalogAdapter creates a new CatalogAdapter with the given service.
func NewCatalogAdapter(service primary.CatalogService, out io.Writer) *CatalogAdapter {
	return &CatalogAdapter{
		service: service,
		out:     out,
	}
}

// Fetch ensures the catalog exists, refetching when force is set.
func (a *CatalogAdapter) Fetch(ctx context.Context, force bool) (*primary.EnsureCatalogResponse, error) {
	progress(a.out, "checking local att&ck technique catalog...")

	resp, err := a.service.EnsureCatalog(ctx, primary.EnsureCatalogRequest{Force: force})
	if err != nil {
		return nil, err
	}

	if resp.Skipped {
		notice(a.out, "%s already exists, skipping", resp.Location)
		return resp, nil
	}

	success(a.out, "successfully parsed att&ck data and wrote %d records to %s", resp.Written, resp.Location)
	return resp, nil
}

// Lookup prints a single catalog record.
func (a *CatalogAdapter) Lookup(ctx context.Context, techniqueID string) (*models.TechniqueRecord, error) {
	record, err := a.service.Lookup(ctx, techniqueID)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "%s  %s\n", record.ID, record.Name)
	if len(record.Phases) == 0 {
		fmt.Fprintln(a.out, "  Phases: (none)")
	} else {
		fmt.Fprintf(a.out, "  Phases: %s\n", strings.Join(record.Phases, ", "))
	}
	return record, nil
}
