// Package catalog contains the pure logic that turns the ATT&CK STIX bundle
// into the flat technique catalog and looks techniques up in it.
package catalog

// Bundle is the top level of an ATT&CK STIX document.
type Bundle struct {
	Type    string   `json:"type"`
	ID      string   `json:"id"`
	Objects []Object `json:"objects"`
}

// Object is any STIX object in the bundle. Only the fields needed to build
// the catalog are decoded.
type Object struct {
	Type               string              `json:"type"`
	ID                 string              `json:"id"`
	Name               string              `json:"name,omitempty"`
	ExternalReferences []ExternalReference `json:"external_references,omitempty"`
	KillChainPhases    []KillChainPhase    `json:"kill_chain_phases,omitempty"`
}

// ExternalReference links a STIX object to an outside identifier.
type ExternalReference struct {
	SourceName string `json:"source_name"`
	ExternalID string `json:"external_id,omitempty"`
	URL        string `json:"url,omitempty"`
}

// KillChainPhase names the tactic an attack pattern belongs to.
type KillChainPhase struct {
	KillChainName string `json:"kill_chain_name"`
	PhaseName     string `json:"phase_name"`
}

const (
	// TypeAttackPattern is the STIX type ATT&CK uses for techniques.
	TypeAttackPattern = "attack-pattern"

	// SourceMitreAttack is the external reference source carrying technique IDs.
	SourceMitreAttack = "mitre-attack"
)
