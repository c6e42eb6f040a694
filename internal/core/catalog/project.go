package catalog

import (
	"fmt"

	"github.com/example/navcsv/internal/core/tactic"
	"github.com/example/navcsv/internal/models"
)

// MissingExternalIDError reports an attack pattern without a mitre-attack
// external reference.
type MissingExternalIDError struct {
	STIXID string
	Name   string
}

func (e *MissingExternalIDError) Error() string {
	return fmt.Sprintf("attack-pattern %s (%q) has no %s external reference", e.STIXID, e.Name, SourceMitreAttack)
}

// Project keeps the attack patterns of a bundle and flattens each one into a
// TechniqueRecord, preserving bundle order. The first attack pattern without
// a mitre-attack reference aborts the projection.
func Project(bundle *Bundle) ([]models.TechniqueRecord, error) {
	records := []models.TechniqueRecord{}
	for _, obj := range bundle.Objects {
		if obj.Type != TypeAttackPattern {
			continue
		}

		id, ok := techniqueID(obj.ExternalReferences)
		if !ok {
			return nil, &MissingExternalIDError{STIXID: obj.ID, Name: obj.Name}
		}

		phases := make([]string, 0, len(obj.KillChainPhases))
		for _, kcp := range obj.KillChainPhases {
			phases = append(phases, tactic.TitleCase(kcp.PhaseName))
		}

		records = append(records, models.TechniqueRecord{
			ID:     id,
			Name:   obj.Name,
			Phases: phases,
		})
	}
	return records, nil
}

// techniqueID returns the external_id of the first mitre-attack reference.
func techniqueID(refs []ExternalReference) (string, bool) {
	for _, ref := range refs {
		if ref.SourceName == SourceMitreAttack {
			return ref.ExternalID, true
		}
	}
	return "", false
}
