// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package drug

import (
	"fmt"
	"strings"

	"github.com/medgraph/drugindex/pkg/types"
)

// Describe derives the free-text description of an assembled drug from its
// type, trial phase, approval year, indication count, and withdrawal
// status. Fields with no data contribute no clause.
func Describe(d types.Drug) string {
	subject := "Drug"
	if d.DrugType != "" {
		subject = capitalize(d.DrugType) + " drug"
	}

	var clauses []string
	if d.MaximumClinicalTrialPhase > 0 {
		clauses = append(clauses, fmt.Sprintf("with a maximum clinical trial phase of %s", phaseLabel(d.MaximumClinicalTrialPhase)))
	}
	if d.YearOfFirstApproval > 0 {
		clauses = append(clauses, fmt.Sprintf("first approved in %d", d.YearOfFirstApproval))
	}
	if d.Indications != nil && d.Indications.Count > 0 {
		noun := "diseases"
		if d.Indications.Count == 1 {
			noun = "disease"
		}
		clauses = append(clauses, fmt.Sprintf("indicated for %d %s", d.Indications.Count, noun))
	}

	s := subject
	switch len(clauses) {
	case 0:
	case 1:
		s += " " + clauses[0]
	case 2:
		s += " " + clauses[0] + " and " + clauses[1]
	default:
		s += " " + strings.Join(clauses[:len(clauses)-1], ", ") + ", and " + clauses[len(clauses)-1]
	}
	s += "."

	if d.HasBeenWithdrawn {
		s += " It has been withdrawn in at least one region."
	}
	return s
}

// phaseLabel renders a clinical phase the way trial registries do: roman
// numerals for whole phases, the raw number otherwise.
func phaseLabel(phase float64) string {
	romans := map[float64]string{1: "I", 2: "II", 3: "III", 4: "IV"}
	if r, ok := romans[phase]; ok {
		return r
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", phase), "0"), ".")
}

// capitalize upper-cases the first byte of s; molecule types are plain
// ASCII labels.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
