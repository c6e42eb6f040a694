package secondary

import (
	"context"

	"github.com/example/navcsv/internal/models"
)

// LayerReader defines the secondary port for reading Navigator layer files.
type LayerReader interface {
	ReadLayer(ctx context.Context, path string) (*models.Layer, error)
}
