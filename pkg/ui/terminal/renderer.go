// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/output/styles"
	"github.com/arthur-debert/schanno/pkg/report"
	"github.com/arthur-debert/schanno/pkg/ui/table"
	"github.com/arthur-debert/schanno/pkg/ui/text"
)

const defaultWidth = 100

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
	width  int
}

// New creates a new terminal renderer. The line width comes from the
// terminal when output is one.
func New(w io.Writer) (*Renderer, error) {
	width := defaultWidth
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			width = cols
		}
	}
	return &Renderer{output: w, width: width}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *report.Listing:
		return r.renderListing(v)
	case *report.CheckReport:
		return r.renderCheck(v)
	case *report.ChangeReport:
		return r.renderChanges(v)
	case *report.BOM:
		return r.renderBOM(v)
	case report.Message:
		return r.RenderMessage(v.Text)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	msg := pterm.Error.MessageStyle.Sprint(err.Error())
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg += " " + styles.GetStyle("Muted").Render(string(code))
	}
	_, werr := fmt.Fprintf(r.output, "%s %s\n", styles.GetStyle("Error").Render(pterm.Error.Prefix.Text), msg)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) println(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// styledTable pads cells on the plain text, then styles each cell, so
// escape codes never disturb the alignment.
func (r *Renderer) styledTable(rows [][]string, cellStyle func(row, col int) lipgloss.Style) []string {
	widths := table.Widths(rows)
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			if j < len(row)-1 {
				cell = table.Pad(cell, widths[j])
			} else {
				cell = table.Truncate(cell, r.width-sum(widths[:j])-2*j)
			}
			cells[j] = cellStyle(i, j).Render(cell)
		}
		lines = append(lines, strings.Join(cells, "  "))
	}
	return lines
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}

func (r *Renderer) header(title string) string {
	return styles.GetStyle("Header").Render(title)
}

func (r *Renderer) renderListing(l *report.Listing) error {
	title := fmt.Sprintf("%s  %s", styles.GetStyle("FilePath").Render(l.File),
		styles.GetStyle("Muted").Render(fmt.Sprintf("%d components", len(l.Components))))
	if len(l.Components) == 0 {
		return r.println(title, styles.GetStyle("NoContent").Render("No components"))
	}

	rows := text.ListingRows(l)
	lines := r.styledTable(rows, func(row, col int) lipgloss.Style {
		if row == 0 {
			return styles.GetStyle("TableHeader")
		}
		c := l.Components[row-1]
		switch col {
		case 0:
			if c.Conflict {
				return styles.GetStyle("Conflict")
			}
			return styles.GetStyle("Changed")
		case 1:
			if c.Conflict {
				return styles.GetStyle("Conflict")
			}
			return styles.GetStyle("Reference")
		case 3:
			return styles.GetStyle("Value")
		case 5:
			return styles.GetStyle("Muted")
		}
		return lipgloss.NewStyle()
	})
	return r.println(append([]string{r.header(title)}, lines...)...)
}

func (r *Renderer) renderCheck(c *report.CheckReport) error {
	for _, f := range c.Files {
		var headline string
		switch {
		case f.Error != "":
			headline = styles.GetStyle("Error").Render(pterm.Error.Prefix.Text) + " " + text.FileSummary(f)
		case len(f.Problems) == 0:
			headline = styles.GetStyle("Success").Render(pterm.Success.Prefix.Text) + " " + text.FileSummary(f)
		default:
			headline = styles.GetStyle("Warning").Render(pterm.Warning.Prefix.Text) + " " + text.FileSummary(f)
		}
		if err := r.println(headline); err != nil {
			return err
		}

		indent := styles.GetStyle("Indent")
		for _, p := range f.Problems {
			line := fmt.Sprintf("%s %s",
				styles.GetStyle("Bold").Render(fmt.Sprintf("%d.", p.Number)),
				table.Truncate(p.Description, r.width-6))
			if err := r.println(indent.Render(line)); err != nil {
				return err
			}
		}
	}

	if len(c.Files) > 1 {
		summary := fmt.Sprintf("%d problems in %d files", c.ProblemCount(), len(c.Files))
		return r.println("", styles.GetStyle("SubHeader").Render(summary))
	}
	return nil
}

func (r *Renderer) renderChanges(c *report.ChangeReport) error {
	var lines []string
	if c.DryRun {
		lines = append(lines, styles.GetStyle("DryRunBanner").Render("DRY RUN"))
	}
	lines = append(lines, r.header(text.ChangeHeadline(c)))

	rows := text.ChangeRows(c)
	for _, line := range r.styledTable(rows, func(row, col int) lipgloss.Style {
		switch col {
		case 0:
			return styles.GetStyle("Muted")
		case 2:
			return styles.GetStyle("Reference")
		}
		return lipgloss.NewStyle()
	}) {
		lines = append(lines, styles.GetStyle("Indent").Render(line))
	}

	for _, line := range text.ChangeFooter(c) {
		lines = append(lines, styles.GetStyle("Success").Render(line))
	}
	return r.println(lines...)
}

func (r *Renderer) renderBOM(b *report.BOM) error {
	title := fmt.Sprintf("%s  %s", styles.GetStyle("FilePath").Render(b.File),
		styles.GetStyle("Muted").Render(fmt.Sprintf("%d parts", b.Parts)))
	if len(b.Lines) == 0 {
		return r.println(title, styles.GetStyle("NoContent").Render("No parts"))
	}

	lines := r.styledTable(text.BOMRows(b), func(row, col int) lipgloss.Style {
		if row == 0 {
			return styles.GetStyle("TableHeader")
		}
		switch col {
		case 1:
			return styles.GetStyle("Value")
		case 4:
			return styles.GetStyle("Reference")
		}
		return lipgloss.NewStyle()
	})
	return r.println(append([]string{r.header(title)}, lines...)...)
}
