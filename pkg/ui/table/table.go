// Package table lays out rows of cells in aligned columns. Widths are
// measured in terminal cells, so values such as "4.7μF" or "10Ω" line up.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Widths returns the widest cell of each column
func Widths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Pad right-pads s with spaces to width cells
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Truncate shortens s to at most width cells, marking the cut with "..."
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// Format renders rows with columns separated by gap spaces. The last
// column is not padded.
func Format(rows [][]string, gap int) []string {
	widths := Widths(rows)
	sep := strings.Repeat(" ", gap)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString(sep)
			}
			if i == len(row)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(Pad(cell, widths[i]))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}
