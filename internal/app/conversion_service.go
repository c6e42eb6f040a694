package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/navcsv/internal/core/catalog"
	corelayer "github.com/example/navcsv/internal/core/layer"
	"github.com/example/navcsv/internal/core/tactic"
	"github.com/example/navcsv/internal/ports/primary"
	"github.com/example/navcsv/internal/ports/secondary"
)

// ConversionServiceImpl implements the ConversionService interface.
type ConversionServiceImpl struct {
	store      secondary.CatalogStore
	layers     secondary.LayerReader
	csvWriter  secondary.GridWriter
	xlsxWriter secondary.GridWriter // optional
	logger     *zap.Logger
}

// NewConversionService creates a new ConversionService with injected dependencies.
// xlsxWriter may be nil, in which case XLSX requests are rejected.
func NewConversionService(
	store secondary.CatalogStore,
	layers secondary.LayerReader,
	csvWriter secondary.GridWriter,
	xlsxWriter secondary.GridWriter,
	logger *zap.Logger,
) *ConversionServiceImpl {
	return &ConversionServiceImpl{
		store:      store,
		layers:     layers,
		csvWriter:  csvWriter,
		xlsxWriter: xlsxWriter,
		logger:     logger,
	}
}

// Convert joins the layer's techniques against the catalog, groups them by
// tactic and writes the grid. The catalog must already exist.
func (s *ConversionServiceImpl) Convert(ctx context.Context, req primary.ConvertRequest) (*primary.ConvertResponse, error) {
	if req.XLSX && s.xlsxWriter == nil {
		return nil, errors.New("xlsx output is not available")
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	index := catalog.NewIndex(records)

	s.logger.Debug("parsing user-submitted layer", zap.String("path", req.LayerPath))
	layer, err := s.layers.ReadLayer(ctx, req.LayerPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read layer: %w", err)
	}

	deduped := corelayer.Dedupe(layer.Techniques)
	if deduped.Dropped > 0 {
		s.logger.Debug("dropped duplicate techniques", zap.Int("count", deduped.Dropped))
	}

	s.logger.Debug("building tactics", zap.Int("techniques", len(deduped.Entries)), zap.Int("catalog", index.Len()))
	buckets := tactic.NewBuckets()
	for _, entry := range deduped.Entries {
		record, err := index.Lookup(entry.TechniqueID)
		if err != nil {
			return nil, err
		}
		if _, err := buckets.Place(entry.TechniqueID, entry.Tactic, record.DisplayName()); err != nil {
			return nil, err
		}
	}
	grid := buckets.Grid()

	writers := []secondary.GridWriter{s.csvWriter}
	if req.XLSX {
		writers = append(writers, s.xlsxWriter)
	}

	outputs := make([]string, 0, len(writers))
	for _, w := range writers {
		path := req.OutputName + "." + w.Extension()
		s.logger.Debug("writing grid", zap.String("path", path), zap.Int("rows", len(grid.Rows)))
		if err := w.WriteGrid(ctx, path, grid); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		outputs = append(outputs, path)
	}

	return &primary.ConvertResponse{
		Outputs:    outputs,
		Techniques: len(deduped.Entries),
		Duplicates: deduped.Dropped,
		Rows:       len(grid.Rows),
	}, nil
}

// Ensure ConversionServiceImpl implements the interface.
var _ primary.ConversionService = (*ConversionServiceImpl)(nil)
