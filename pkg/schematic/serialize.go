package schematic

import (
	"strings"

	"github.com/arthur-debert/schanno/pkg/errors"
)

// Generate rebuilds the full file text. Lines outside component blocks and
// untracked blocks are copied verbatim; the k-th component block is
// replaced by the lines of the k-th component. With no designator changes
// the result equals the original text.
func (d *Document) Generate() (string, error) {
	var b strings.Builder
	b.Grow(len(d.text))

	writeLines := func(lines []Line) {
		for _, line := range lines {
			b.WriteString(line.Text)
			b.WriteString(line.EOL)
		}
	}

	next := 0
	pos := 0
	for _, blk := range d.blocks {
		writeLines(d.lines[pos:blk.start])
		pos = blk.end

		if blk.component < 0 {
			writeLines(d.lines[blk.start:blk.end])
			continue
		}

		if blk.component != next {
			return "", errors.Newf(errors.ErrIndexMismatch,
				"block at line %d maps to component %d, expected %d", blk.start+1, blk.component, next)
		}
		comp, err := d.Component(next)
		if err != nil {
			return "", err
		}
		next++

		regenerated := comp.Lines()
		source := d.lines[blk.start:blk.end]
		if len(regenerated) != len(source) {
			return "", errors.Newf(errors.ErrInternal,
				"component %s regenerated %d lines for a %d line block", comp.reference, len(regenerated), len(source))
		}
		for i, text := range regenerated {
			b.WriteString(text)
			b.WriteString(source[i].EOL)
		}
	}
	writeLines(d.lines[pos:])

	if next != len(d.components) {
		return "", errors.Newf(errors.ErrIndexMismatch,
			"wrote %d component blocks for %d components", next, len(d.components))
	}
	return b.String(), nil
}
