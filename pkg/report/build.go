package report

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/schanno/pkg/schematic"
)

// Row converts one component to a listing row
func Row(c *schematic.Component) ComponentRow {
	footprint := c.FootprintName()
	if lib := c.FootprintLibrary(); lib != "" {
		footprint = lib + ":" + footprint
	}
	return ComponentRow{
		Index:     c.Index(),
		Reference: c.Reference(),
		Unit:      UnitLetter(c.UnitNumber()),
		Value:     c.Value(),
		Symbol:    c.Symbol(),
		Footprint: footprint,
		Timestamp: c.Timestamp(),
		Conflict:  c.HasConflict(),
		Changed:   c.Modified(),
	}
}

// NewListing builds the component table. distinct keeps one row per
// reference; sorted orders rows by symbol, designator and value.
func NewListing(doc *schematic.Document, distinct, sorted bool) *Listing {
	comps := doc.Components()
	if distinct {
		comps = doc.DistinctComponents()
	}
	if sorted {
		comps = schematic.SortComponents(comps)
	}

	rows := make([]ComponentRow, 0, len(comps))
	for _, c := range comps {
		rows = append(rows, Row(c))
	}
	return &Listing{
		File:       doc.SuggestedFilename(),
		Distinct:   distinct,
		Sorted:     sorted,
		Components: rows,
	}
}

// NewProblemRows numbers problems from 1 in analysis order
func NewProblemRows(problems []schematic.Problem) []ProblemRow {
	rows := make([]ProblemRow, 0, len(problems))
	for i, p := range problems {
		members := make([]MemberRow, 0, len(p.Members))
		for _, m := range p.Members {
			members = append(members, MemberRow{
				Index:     m.Index(),
				Reference: m.Reference(),
				Unit:      UnitLetter(m.UnitNumber()),
				Value:     m.Value(),
			})
		}
		rows = append(rows, ProblemRow{
			Number:      i + 1,
			Kind:        string(p.Kind),
			Description: Describe(p),
			Members:     members,
		})
	}
	return rows
}

// NewFileProblems reports the current problems of doc
func NewFileProblems(file string, doc *schematic.Document) (FileProblems, error) {
	problems, err := doc.Problems()
	if err != nil {
		return FileProblems{}, err
	}
	return FileProblems{
		File:       file,
		Components: doc.Len(),
		Problems:   NewProblemRows(problems),
	}, nil
}

// Describe renders a problem as a sentence, e.g.
//
//	Duplicate component references: R1 Unit A (value 100k) and R1 Unit A (value 10k)
func Describe(p schematic.Problem) string {
	parts := make([]string, 0, len(p.Members))
	for _, m := range p.Members {
		parts = append(parts, fmt.Sprintf("%s Unit %s (value %s)",
			m.Reference(), UnitLetter(m.UnitNumber()), m.Value()))
	}

	var prefix string
	switch p.Kind {
	case schematic.ProblemDuplicate:
		prefix = "Duplicate component references"
	default:
		prefix = string(p.Kind)
	}
	return prefix + ": " + joinWithAnd(parts)
}

func joinWithAnd(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
}

// NewBOM groups the distinct parts of doc by symbol, value and footprint.
// Lines keep the order of their first part in the sorted component list.
func NewBOM(doc *schematic.Document) *BOM {
	type key struct{ symbol, value, footprint string }

	bom := &BOM{File: doc.SuggestedFilename()}
	index := make(map[key]int)

	for _, c := range schematic.SortComponents(doc.DistinctComponents()) {
		row := Row(c)
		k := key{row.Symbol, row.Value, row.Footprint}
		i, ok := index[k]
		if !ok {
			i = len(bom.Lines)
			index[k] = i
			bom.Lines = append(bom.Lines, BOMLine{
				Symbol:    row.Symbol,
				Value:     row.Value,
				Footprint: row.Footprint,
			})
		}
		bom.Lines[i].Quantity++
		bom.Lines[i].References = append(bom.Lines[i].References, row.Reference)
		bom.Parts++
	}
	return bom
}
