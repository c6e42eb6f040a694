package secondary

import (
	"context"

	"github.com/example/navcsv/internal/core/tactic"
)

// GridWriter defines the secondary port for writing the tactic grid to a file.
type GridWriter interface {
	// Extension is the file suffix this writer produces, without the dot.
	Extension() string

	// WriteGrid writes grid to path, replacing any existing file.
	WriteGrid(ctx context.Context, path string, grid tactic.Grid) error
}
