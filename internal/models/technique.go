package models

// TechniqueRecord is one entry of the local technique catalog.
type TechniqueRecord struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Phases []string `json:"phases"`
}

// DisplayName renders the record the way it appears in a tactic column.
func (t TechniqueRecord) DisplayName() string {
	return t.Name + " (" + t.ID + ")"
}
