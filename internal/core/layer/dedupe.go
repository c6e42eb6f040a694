// Package layer contains the pure logic applied to Navigator layer entries.
package layer

import "github.com/example/navcsv/internal/models"

// DedupeResult is the outcome of Dedupe.
type DedupeResult struct {
	Entries []models.LayerEntry
	Dropped int
}

// Dedupe collapses entries sharing a technique ID.
// Each surviving ID keeps the position of its first occurrence and the value
// of its last occurrence.
func Dedupe(entries []models.LayerEntry) DedupeResult {
	position := make(map[string]int, len(entries))
	unique := make([]models.LayerEntry, 0, len(entries))

	for _, e := range entries {
		if i, seen := position[e.TechniqueID]; seen {
			unique[i] = e
			continue
		}
		position[e.TechniqueID] = len(unique)
		unique = append(unique, e)
	}

	return DedupeResult{
		Entries: unique,
		Dropped: len(entries) - len(unique),
	}
}
