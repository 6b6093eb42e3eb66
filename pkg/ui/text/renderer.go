// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/schanno/pkg/report"
	"github.com/arthur-debert/schanno/pkg/ui/table"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	return r.writeLines(Lines(result))
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) writeLines(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// Lines renders a report view to unstyled lines
func Lines(result interface{}) []string {
	switch v := result.(type) {
	case *report.Listing:
		return listingLines(v)
	case *report.CheckReport:
		return checkLines(v)
	case *report.ChangeReport:
		return changeLines(v)
	case *report.BOM:
		return bomLines(v)
	case report.Message:
		return []string{v.Text}
	default:
		return []string{fmt.Sprintf("%+v", result)}
	}
}

// ListingRows is the listing as table rows, header first
func ListingRows(l *report.Listing) [][]string {
	rows := [][]string{{"", "REF", "UNIT", "VALUE", "SYMBOL", "FOOTPRINT"}}
	for _, c := range l.Components {
		mark := ""
		switch {
		case c.Conflict:
			mark = "!"
		case c.Changed:
			mark = "*"
		}
		rows = append(rows, []string{mark, c.Reference, c.Unit, c.Value, c.Symbol, c.Footprint})
	}
	return rows
}

func listingLines(l *report.Listing) []string {
	lines := []string{fmt.Sprintf("%s: %s", l.File, plural(len(l.Components), "component"))}
	if len(l.Components) == 0 {
		return lines
	}
	return append(lines, table.Format(ListingRows(l), 2)...)
}

// FileSummary is the one-line headline of a file's check result
func FileSummary(f report.FileProblems) string {
	switch {
	case f.Error != "":
		return fmt.Sprintf("%s: error: %s", f.File, f.Error)
	case len(f.Problems) == 0:
		return fmt.Sprintf("%s: no problems (%s)", f.File, plural(f.Components, "component"))
	}
	return fmt.Sprintf("%s: %s in %s", f.File, plural(len(f.Problems), "problem"), plural(f.Components, "component"))
}

func checkLines(c *report.CheckReport) []string {
	var lines []string
	for _, f := range c.Files {
		lines = append(lines, FileSummary(f))
		for _, p := range f.Problems {
			lines = append(lines, fmt.Sprintf("  %d. %s", p.Number, p.Description))
		}
	}
	if len(c.Files) > 1 {
		lines = append(lines, fmt.Sprintf("%s in %s", plural(c.ProblemCount(), "problem"), plural(len(c.Files), "file")))
	}
	return lines
}

// ChangeHeadline is the first line of a change report
func ChangeHeadline(c *report.ChangeReport) string {
	return fmt.Sprintf("%s %s (%s): %s changed",
		c.Action, c.File, c.Strategy, plural(len(c.Changes), "designator"))
}

// ChangeFooter describes where the result went
func ChangeFooter(c *report.ChangeReport) []string {
	var lines []string
	if c.Remaining > 0 {
		lines = append(lines, fmt.Sprintf("%s remaining", plural(c.Remaining, "problem")))
	}
	switch {
	case c.DryRun:
		lines = append(lines, "dry run, nothing written")
	case c.Output != "" && c.Backup != "":
		lines = append(lines, fmt.Sprintf("written to %s (backup %s)", c.Output, c.Backup))
	case c.Output != "":
		lines = append(lines, "written to "+c.Output)
	}
	return lines
}

// ChangeRows is the change list as table rows
func ChangeRows(c *report.ChangeReport) [][]string {
	rows := make([][]string, 0, len(c.Changes))
	for _, ch := range c.Changes {
		rows = append(rows, []string{ch.Before, "->", ch.After, "unit " + report.UnitLetter(ch.Unit)})
	}
	return rows
}

func changeLines(c *report.ChangeReport) []string {
	lines := []string{ChangeHeadline(c)}
	for _, line := range table.Format(ChangeRows(c), 1) {
		lines = append(lines, "  "+line)
	}
	return append(lines, ChangeFooter(c)...)
}

// BOMRows is the bill of materials as table rows, header first
func BOMRows(b *report.BOM) [][]string {
	rows := [][]string{{"QTY", "VALUE", "SYMBOL", "FOOTPRINT", "REFERENCES"}}
	for _, line := range b.Lines {
		rows = append(rows, []string{
			strconv.Itoa(line.Quantity),
			line.Value,
			line.Symbol,
			line.Footprint,
			strings.Join(line.References, ", "),
		})
	}
	return rows
}

func bomLines(b *report.BOM) []string {
	lines := []string{fmt.Sprintf("%s: %s, %s", b.File, plural(b.Parts, "part"), plural(len(b.Lines), "line"))}
	if len(b.Lines) == 0 {
		return lines
	}
	return append(lines, table.Format(BOMRows(b), 2)...)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
