package catalog

import (
	"fmt"

	"github.com/example/navcsv/internal/models"
)

// UnknownTechniqueError reports a technique ID absent from the catalog.
type UnknownTechniqueError struct {
	TechniqueID string
}

func (e *UnknownTechniqueError) Error() string {
	return fmt.Sprintf("technique %s not found in catalog", e.TechniqueID)
}

// Index resolves technique IDs against a loaded catalog.
type Index struct {
	byID map[string]models.TechniqueRecord
	size int
}

// NewIndex indexes records by ID. When an ID repeats, the first record wins.
func NewIndex(records []models.TechniqueRecord) *Index {
	byID := make(map[string]models.TechniqueRecord, len(records))
	for _, r := range records {
		if _, exists := byID[r.ID]; !exists {
			byID[r.ID] = r
		}
	}
	return &Index{byID: byID, size: len(records)}
}

// Lookup returns the catalog record for id or *UnknownTechniqueError.
func (x *Index) Lookup(id string) (models.TechniqueRecord, error) {
	r, ok := x.byID[id]
	if !ok {
		return models.TechniqueRecord{}, &UnknownTechniqueError{TechniqueID: id}
	}
	return r, nil
}

// Len is the number of records the index was built from.
func (x *Index) Len() int {
	return x.size
}
