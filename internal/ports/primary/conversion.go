package primary

import "context"

// ConversionService defines the primary port for layer conversion.
type ConversionService interface {
	// Convert turns a Navigator layer into tactic-column output files.
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResponse, error)
}

// ConvertRequest contains parameters for a conversion.
type ConvertRequest struct {
	LayerPath  string
	OutputName string // base name; extensions are appended per format
	XLSX       bool   // also write OutputName.xlsx
}

// ConvertResponse contains the result of a conversion.
type ConvertResponse struct {
	Outputs    []string // files written, CSV first
	Techniques int      // unique techniques placed
	Duplicates int      // layer entries dropped as duplicates
	Rows       int      // data rows, excluding the header
}
