// Package tabular writes the tactic grid to spreadsheet-style files.
package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/example/navcsv/internal/core/tactic"
	"github.com/example/navcsv/internal/ports/secondary"
)

// CSVWriter implements secondary.GridWriter for comma-separated output.
// Records end in CRLF and cells are quoted only when they need it.
type CSVWriter struct{}

// NewCSVWriter creates a new CSVWriter.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Extension returns "csv".
func (w *CSVWriter) Extension() string {
	return "csv"
}

// WriteGrid truncates path and writes the header and rows.
func (w *CSVWriter) WriteGrid(ctx context.Context, path string, grid tactic.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	cw.UseCRLF = true
	if err := cw.WriteAll(grid.Records()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write csv: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// Ensure CSVWriter implements the interface.
var _ secondary.GridWriter = (*CSVWriter)(nil)
