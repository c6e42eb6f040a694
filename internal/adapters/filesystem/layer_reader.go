package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/navcsv/internal/models"
	"github.com/example/navcsv/internal/ports/secondary"
)

// LayerReader implements secondary.LayerReader for Navigator JSON exports.
type LayerReader struct{}

// NewLayerReader creates a new LayerReader.
func NewLayerReader() *LayerReader {
	return &LayerReader{}
}

// ReadLayer parses the layer at path. The document must carry a
// "techniques" array; an empty array is fine.
func (r *LayerReader) ReadLayer(ctx context.Context, path string) (*models.Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw struct {
		Name       string             `json:"name"`
		Domain     string             `json:"domain"`
		Techniques *[]json.RawMessage `json:"techniques"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if raw.Techniques == nil {
		return nil, fmt.Errorf("%s: layer has no \"techniques\" array", path)
	}

	layer := &models.Layer{
		Name:       raw.Name,
		Domain:     raw.Domain,
		Techniques: make([]models.LayerEntry, 0, len(*raw.Techniques)),
	}
	for i, msg := range *raw.Techniques {
		var entry models.LayerEntry
		if err := json.Unmarshal(msg, &entry); err != nil {
			return nil, fmt.Errorf("%s: techniques[%d]: %w", path, i, err)
		}
		layer.Techniques = append(layer.Techniques, entry)
	}
	return layer, nil
}

// Ensure LayerReader implements the interface.
var _ secondary.LayerReader = (*LayerReader)(nil)
