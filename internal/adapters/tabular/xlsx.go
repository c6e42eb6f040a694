package tabular

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/example/navcsv/internal/core/tactic"
	"github.com/example/navcsv/internal/ports/secondary"
)

// SheetName is the worksheet the grid is written to.
const SheetName = "Tactics"

// XLSXWriter implements secondary.GridWriter for Excel workbooks.
type XLSXWriter struct {
	columnWidth float64
}

// NewXLSXWriter creates a new XLSXWriter.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{columnWidth: 45}
}

// Extension returns "xlsx".
func (w *XLSXWriter) Extension() string {
	return "xlsx"
}

// WriteGrid saves a single-sheet workbook at path with a bold header row.
func (w *XLSXWriter) WriteGrid(ctx context.Context, path string, grid tactic.Grid) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, record := range grid.Records() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(record))
		for j, v := range record {
			values[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	if n := len(grid.Header); n > 0 {
		last, err := excelize.ColumnNumberToName(n)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, "A", last, w.columnWidth); err != nil {
			return fmt.Errorf("failed to size columns: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Ensure XLSXWriter implements the interface.
var _ secondary.GridWriter = (*XLSXWriter)(nil)
