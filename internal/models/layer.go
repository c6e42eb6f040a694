package models

// Layer is the subset of an ATT&CK Navigator layer export the converter reads.
type Layer struct {
	Name       string       `json:"name,omitempty"`
	Domain     string       `json:"domain,omitempty"`
	Techniques []LayerEntry `json:"techniques"`
}

// LayerEntry is a single technique selection in a layer.
// Navigator writes more fields (score, color, comment...); they are ignored.
type LayerEntry struct {
	TechniqueID string `json:"techniqueID"`
	Tactic      string `json:"tactic"`
}
