package cli

import (
	"context"
	"io"
	"strings"

	"github.com/example/navcsv/internal/ports/primary"
)

// ConvertOptions carries the convert command's arguments and flags.
type ConvertOptions struct {
	LayerPath       string
	OutputName      string
	FetchTechniques bool
	XLSX            bool
}

// ConvertAdapter translates the convert command into service calls and
// reports progress as coloured status lines.
type ConvertAdapter struct {
	service primary.ConversionService
	catalog *CatalogAdapter
	out     io.Writer
}

// NewConvertAdapter creates a new ConvertAdapter.
func NewConvertAdapter(service primary.ConversionService, catalog *CatalogAdapter, out io.Writer) *ConvertAdapter {
	return &ConvertAdapter{
		service: service,
		catalog: catalog,
		out:     out,
	}
}

// Convert optionally refreshes the catalog, then converts the layer.
// --fetch-techniques never forces a refetch of an existing catalog.
func (a *ConvertAdapter) Convert(ctx context.Context, opts ConvertOptions) (*primary.ConvertResponse, error) {
	if opts.FetchTechniques {
		if _, err := a.catalog.Fetch(ctx, false); err != nil {
			return nil, err
		}
	}

	progress(a.out, "parsing user-submitted json...")
	resp, err := a.service.Convert(ctx, primary.ConvertRequest{
		LayerPath:  opts.LayerPath,
		OutputName: opts.OutputName,
		XLSX:       opts.XLSX,
	})
	if err != nil {
		return nil, err
	}

	if resp.Duplicates > 0 {
		progress(a.out, "ignored %d duplicate technique entries", resp.Duplicates)
	}
	progress(a.out, "placed %d techniques across %d rows", resp.Techniques, resp.Rows)
	success(a.out, "process completed successfully! wrote %s", strings.Join(resp.Outputs, ", "))
	return resp, nil
}
