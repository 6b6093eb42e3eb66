package schematic

import (
	"strings"

	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/logging"
)

// DefaultFilename is suggested for saving when the input had no name
const DefaultFilename = "schematic.sch"

// State tells whether the derived conflict data can be trusted
type State int

const (
	// StateAnalyzed means problems and conflict flags match the designators
	StateAnalyzed State = iota
	// StateDirty means designators changed since the last analysis
	StateDirty
)

func (s State) String() string {
	switch s {
	case StateAnalyzed:
		return "analyzed"
	case StateDirty:
		return "dirty"
	}
	return "unknown"
}

// Line is one source line with its terminator split off
type Line struct {
	Text string
	EOL  string
}

// block is the line span [start, end) of one component block and the index
// of the component it produced, or -1 for blocks that are not tracked.
type block struct {
	start     int
	end       int
	component int
}

// Document is a parsed schematic file
type Document struct {
	filename string
	text     string
	lines    []Line

	blocks     []block
	components []*Component

	problems []Problem
	state    State
}

// Parse scans schematic text and builds its component list, then runs an
// initial analysis. filename may be empty. A malformed block fails the whole
// load with a format error.
func Parse(filename, text string) (*Document, error) {
	logger := logging.GetLogger("schematic")
	done := logging.LogOperationStart(logger, "parse")
	defer done()

	doc := &Document{
		filename: filename,
		text:     text,
		lines:    splitLines(text),
	}

	pending := -1
	for i, line := range doc.lines {
		if line.Text == BlockStart {
			if pending >= 0 {
				logger.Warn().
					Int("line", pending+1).
					Msg("Component block started while another was still open, closing it")
				if err := doc.flush(pending, i); err != nil {
					return nil, err
				}
			}
			pending = i
		}

		if pending >= 0 && line.Text == BlockEnd {
			if err := doc.flush(pending, i+1); err != nil {
				return nil, err
			}
			pending = -1
		}
	}

	if pending >= 0 {
		logger.Warn().
			Int("line", pending+1).
			Msg("Component block still open at end of file, closing it")
		if err := doc.flush(pending, len(doc.lines)); err != nil {
			return nil, err
		}
	}

	doc.Analyze()

	logger.Info().
		Str("file", filename).
		Int("lines", len(doc.lines)).
		Int("components", len(doc.components)).
		Int("problems", len(doc.problems)).
		Msg("Schematic parsed")

	return doc, nil
}

func (d *Document) flush(start, end int) error {
	texts := make([]string, 0, end-start)
	for _, line := range d.lines[start:end] {
		texts = append(texts, line.Text)
	}

	comp, err := ComponentFromLines(texts)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFormat, "invalid component block at line %d", start+1).
			WithDetail("file", d.filename)
	}

	blk := block{start: start, end: end, component: -1}
	if comp != nil {
		comp.index = len(d.components)
		d.components = append(d.components, comp)
		blk.component = comp.index
	}
	d.blocks = append(d.blocks, blk)
	return nil
}

// splitLines splits text on LF, CRLF or CR, keeping each terminator with
// its line. A final line without terminator has an empty EOL.
func splitLines(text string) []Line {
	var lines []Line
	for len(text) > 0 {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			lines = append(lines, Line{Text: text})
			break
		}
		eolLen := 1
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			eolLen = 2
		}
		lines = append(lines, Line{Text: text[:i], EOL: text[i : i+eolLen]})
		text = text[i+eolLen:]
	}
	return lines
}

// Filename is the name the document was loaded with, possibly empty
func (d *Document) Filename() string { return d.filename }

// SuggestedFilename is the name to save under
func (d *Document) SuggestedFilename() string {
	if d.filename == "" {
		return DefaultFilename
	}
	return d.filename
}

// OriginalText is the text the document was parsed from
func (d *Document) OriginalText() string { return d.text }

// OriginalLines returns the source lines without terminators
func (d *Document) OriginalLines() []string {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = line.Text
	}
	return out
}

// Len is the number of tracked components
func (d *Document) Len() int { return len(d.components) }

// Components returns the components in file order. The slice is a copy;
// the components themselves are shared with the document.
func (d *Document) Components() []*Component {
	return append([]*Component(nil), d.components...)
}

// Component returns the component at index i, failing if the index is out
// of range or the stored component disagrees with its position.
func (d *Document) Component(i int) (*Component, error) {
	if i < 0 || i >= len(d.components) {
		return nil, errors.Newf(errors.ErrIndexMismatch, "component index %d out of range", i).
			WithDetail("count", len(d.components))
	}
	c := d.components[i]
	if c.index != i {
		return nil, errors.Newf(errors.ErrIndexMismatch, "component at position %d carries index %d", i, c.index)
	}
	return c, nil
}

// owns reports whether c is the component this document holds at c's index
func (d *Document) owns(c *Component) bool {
	return c != nil && c.index >= 0 && c.index < len(d.components) && d.components[c.index] == c
}

// State reports whether derived conflict data is current
func (d *Document) State() State { return d.state }

// Problems returns the problems found by the last analysis. It fails with a
// stale-analysis error while the document is Dirty.
func (d *Document) Problems() ([]Problem, error) {
	if d.state == StateDirty {
		return nil, errors.New(errors.ErrStaleAnalysis, "designators changed since the last analysis")
	}
	return append([]Problem(nil), d.problems...), nil
}

// Change is a designator that differs from the parsed one
type Change struct {
	Index  int    `json:"index" yaml:"index" toml:"index"`
	Unit   string `json:"unit" yaml:"unit" toml:"unit"`
	Before string `json:"before" yaml:"before" toml:"before"`
	After  string `json:"after" yaml:"after" toml:"after"`
}

// Changes lists components whose designator differs from the source
func (d *Document) Changes() []Change {
	var changes []Change
	for _, c := range d.components {
		if c.reference == c.originalReference {
			continue
		}
		changes = append(changes, Change{
			Index:  c.index,
			Unit:   c.unitNumber,
			Before: c.originalReference,
			After:  c.reference,
		})
	}
	return changes
}
