package schematic

import (
	"sort"
)

// ProblemKind classifies a problem
type ProblemKind string

// ProblemDuplicate is two or more components sharing reference and unit
const ProblemDuplicate ProblemKind = "duplicate_designator"

// Problem is a conflict found by analysis. Members[0] is the canonical
// component, the remaining members are in encounter order.
type Problem struct {
	Kind    ProblemKind
	Members []*Component
}

// Canonical is the first-encountered member
func (p Problem) Canonical() *Component {
	if len(p.Members) == 0 {
		return nil
	}
	return p.Members[0]
}

type unitKey struct {
	reference string
	unit      string
}

// Analyze recomputes conflict flags and the problem list from the current
// designators and moves the document to StateAnalyzed. Components without a
// designator number never conflict.
func (d *Document) Analyze() []Problem {
	canonical := make(map[unitKey]*Component)
	groups := make(map[unitKey]int)
	var problems []Problem

	for _, c := range d.components {
		c.hasConflict = false
	}

	for _, c := range d.components {
		if !c.hasNumber {
			continue
		}

		key := unitKey{reference: c.reference, unit: c.unitNumber}
		first, seen := canonical[key]
		if !seen {
			canonical[key] = c
			continue
		}

		first.hasConflict = true
		c.hasConflict = true

		gi, ok := groups[key]
		if !ok {
			problems = append(problems, Problem{
				Kind:    ProblemDuplicate,
				Members: []*Component{first},
			})
			gi = len(problems) - 1
			groups[key] = gi
		}
		problems[gi].Members = append(problems[gi].Members, c)
	}

	d.problems = problems
	d.state = StateAnalyzed
	return append([]Problem(nil), problems...)
}

// DistinctComponents returns one component per reference, ignoring units,
// in file order. Components without a designator number are all kept.
func (d *Document) DistinctComponents() []*Component {
	seen := make(map[string]bool)
	var out []*Component
	for _, c := range d.components {
		if !c.hasNumber {
			out = append(out, c)
			continue
		}
		if seen[c.reference] {
			continue
		}
		seen[c.reference] = true
		out = append(out, c)
	}
	return out
}

// SortComponents returns a copy of comps ordered by symbol, letters, number
// and value. Unnumbered components sort before numbered ones with the same
// letters. The document order is not affected.
func SortComponents(comps []*Component) []*Component {
	sorted := append([]*Component(nil), comps...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareComponents(sorted[i], sorted[j]) < 0
	})
	return sorted
}

func compareComponents(a, b *Component) int {
	if sa, sb := a.Symbol(), b.Symbol(); sa != sb {
		return compareStrings(sa, sb)
	}
	if a.letters != b.letters {
		return compareStrings(a.letters, b.letters)
	}
	if a.hasNumber != b.hasNumber {
		if a.hasNumber {
			return 1
		}
		return -1
	}
	if a.number != b.number {
		if a.number < b.number {
			return -1
		}
		return 1
	}
	return compareStrings(a.value, b.value)
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
