// Package tactic contains the pure logic for routing techniques into the
// fixed ATT&CK tactic columns. Nothing here performs I/O.
package tactic

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tactic is the display name of one enterprise ATT&CK tactic column.
type Tactic string

// Tactic columns, declared in output order.
const (
	InitialAccess       Tactic = "Initial Access"
	Execution           Tactic = "Execution"
	Persistence         Tactic = "Persistence"
	PrivilegeEscalation Tactic = "Privilege Escalation"
	DefenseEvasion      Tactic = "Defense Evasion"
	CredentialAccess    Tactic = "Credential Access"
	Discovery           Tactic = "Discovery"
	LateralMovement     Tactic = "Lateral Movement"
	Collection          Tactic = "Collection"
	CommandAndControl   Tactic = "Command And Control"
	Exfiltration        Tactic = "Exfiltration"
	Impact              Tactic = "Impact"
)

// All returns the twelve tactic columns in output order.
// The slice is freshly allocated on every call.
func All() []Tactic {
	return []Tactic{
		InitialAccess,
		Execution,
		Persistence,
		PrivilegeEscalation,
		DefenseEvasion,
		CredentialAccess,
		Discovery,
		LateralMovement,
		Collection,
		CommandAndControl,
		Exfiltration,
		Impact,
	}
}

// Valid reports whether t is one of the twelve columns.
func (t Tactic) Valid() bool {
	for _, known := range All() {
		if t == known {
			return true
		}
	}
	return false
}

// TitleCase turns an ATT&CK short name such as "command-and-control" into
// its display form "Command And Control": split on hyphens, capitalise the
// first letter of each word, lower-case the rest, join with spaces.
func TitleCase(hyphenated string) string {
	// cases.Caser keeps state between calls, so build one per use.
	caser := cases.Title(language.Und)
	return caser.String(strings.Join(strings.Split(hyphenated, "-"), " "))
}

// Normalize maps a layer tactic string ("lateral-movement", "LATERAL-MOVEMENT")
// to its column. ok is false when the normalised name is not a known column.
func Normalize(raw string) (t Tactic, ok bool) {
	t = Tactic(TitleCase(raw))
	return t, t.Valid()
}

// UnknownTacticError reports a layer entry whose tactic does not normalise
// to one of the twelve columns.
type UnknownTacticError struct {
	TechniqueID string
	Tactic      string
}

func (e *UnknownTacticError) Error() string {
	return fmt.Sprintf("technique %s: tactic %q (normalised %q) is not a known tactic column",
		e.TechniqueID, e.Tactic, TitleCase(e.Tactic))
}
