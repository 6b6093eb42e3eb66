package schematic

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/logging"
)

// Block delimiters
const (
	BlockStart = "$Comp"
	BlockEnd   = "$EndComp"
)

type lineKind uint8

const (
	lineMarker lineKind = iota
	lineSymbol
	lineUnit
	linePosition
	lineField
	lineAdditional
)

// lineSlot records what a source line inside a block was, so a regenerated
// block keeps the original line order.
type lineSlot struct {
	kind lineKind
	// index into fields or additional for lineField and lineAdditional
	index int
}

// Component is one unit of a schematic part, built from a single block.
//
// Fields are read through accessors; designators change only through
// Document.Resolve and Document.Annotate so the document can track what
// needs regenerating.
type Component struct {
	index int

	library string
	name    string

	reference string
	letters   string
	number    int
	hasNumber bool

	value        string
	numericValue float64
	hasNumeric   bool

	footprintLibrary string
	footprintName    string

	unitNumber string
	timestamp  string
	unitLine   string
	posLine    string

	fields     []Field
	additional []string

	hasConflict bool

	source            []string
	layout            []lineSlot
	originalReference string
	modified          bool
}

// ComponentFromLines builds a component from the lines of one block, from
// `$Comp` to `$EndComp` inclusive. It returns a format error when the input
// is empty or does not start with the block marker, and (nil, nil) when the
// block is a power flag.
func ComponentFromLines(lines []string) (*Component, error) {
	if len(lines) == 0 {
		return nil, errors.New(errors.ErrFormat, "component lines are empty")
	}
	if lines[0] != BlockStart {
		return nil, errors.Newf(errors.ErrFormat, "component block does not start with '%s'", BlockStart).
			WithDetail("line", lines[0])
	}

	comp := &Component{
		index:  -1,
		source: append([]string(nil), lines...),
		layout: make([]lineSlot, 0, len(lines)),
	}

	for _, line := range lines {
		comp.processLine(line)
	}

	if strings.HasPrefix(comp.reference, "#") {
		return nil, nil
	}

	comp.processFields()

	if last := lines[len(lines)-1]; last != BlockEnd {
		logger := logging.GetLogger("schematic")
		logger.Warn().
			Str("reference", comp.reference).
			Str("lastLine", last).
			Msgf("Component block does not end with '%s'", BlockEnd)
	}

	return comp, nil
}

func (c *Component) processLine(line string) {
	if line == BlockStart || line == BlockEnd {
		c.layout = append(c.layout, lineSlot{kind: lineMarker})
		return
	}

	var first byte
	if line != "" {
		first = line[0]
	}

	switch first {
	case 'L':
		c.layout = append(c.layout, lineSlot{kind: lineSymbol})
		tokens := strings.Fields(line)
		if len(tokens) > 1 {
			c.library, c.name = splitLibraryItem(tokens[1])
		}
		if len(tokens) > 2 {
			c.applyReference(tokens[2])
		}
		c.originalReference = c.reference

	case 'U':
		c.layout = append(c.layout, lineSlot{kind: lineUnit})
		c.unitLine = line
		tokens := strings.Fields(line)
		if len(tokens) > 1 {
			c.unitNumber = tokens[1]
		}
		if len(tokens) > 3 {
			c.timestamp = tokens[3]
		}

	case 'P':
		c.layout = append(c.layout, lineSlot{kind: linePosition})
		c.posLine = line

	case 'F':
		field, _ := ParseField(line)
		c.layout = append(c.layout, lineSlot{kind: lineField, index: len(c.fields)})
		c.fields = append(c.fields, field)

	default:
		c.layout = append(c.layout, lineSlot{kind: lineAdditional, index: len(c.additional)})
		c.additional = append(c.additional, line)
	}
}

func (c *Component) processFields() {
	for _, field := range c.fields {
		if field.IsRaw() {
			continue
		}
		switch field.Number {
		case FieldValue:
			c.value = field.Text
			c.numericValue, c.hasNumeric = ParseValue(field.Text)
		case FieldFootprint:
			c.footprintLibrary, c.footprintName = splitLibraryItem(field.Text)
		}
	}
}

func (c *Component) applyReference(reference string) {
	ref := ParseReference(reference)
	c.reference = reference
	c.letters = ref.Letters
	c.number = ref.Number
	c.hasNumber = ref.HasNumber
}

// setNumber assigns a designator number, rebuilding the reference and the
// reference field. Assigning the current number is a no-op.
func (c *Component) setNumber(n int) {
	if c.hasNumber && c.number == n {
		return
	}
	c.number = n
	c.hasNumber = true
	c.reference = FormatReference(c.letters, n, true)
	for i := range c.fields {
		if !c.fields[i].IsRaw() && c.fields[i].Number == FieldReference {
			c.fields[i].Text = c.reference
		}
	}
	c.modified = c.reference != c.originalReference
}

// Lines returns the block lines for the component's current state. An
// unmodified component returns its source lines untouched.
func (c *Component) Lines() []string {
	if !c.modified {
		return append([]string(nil), c.source...)
	}

	lines := make([]string, 0, len(c.layout))
	for i, slot := range c.layout {
		switch slot.kind {
		case lineMarker:
			lines = append(lines, c.source[i])
		case lineSymbol:
			lines = append(lines, c.symbolLine())
		case lineUnit:
			lines = append(lines, c.unitLine)
		case linePosition:
			lines = append(lines, c.posLine)
		case lineField:
			lines = append(lines, c.fields[slot.index].String())
		case lineAdditional:
			lines = append(lines, c.additional[slot.index])
		}
	}
	return lines
}

func (c *Component) symbolLine() string {
	symbol := c.name
	if c.library != "" {
		symbol = c.library + ":" + c.name
	}
	return "L " + symbol + " " + c.reference
}

func splitLibraryItem(s string) (string, string) {
	lib, item, ok := strings.Cut(s, ":")
	if !ok {
		return "", s
	}
	return lib, item
}

// Index is the component's position in the document, fixed at parse time
func (c *Component) Index() int { return c.index }

// Library is the symbol library name from the L line
func (c *Component) Library() string { return c.library }

// Name is the symbol name from the L line
func (c *Component) Name() string { return c.name }

// Symbol is "library:name", or just the name when there is no library
func (c *Component) Symbol() string {
	if c.library == "" {
		return c.name
	}
	return c.library + ":" + c.name
}

// Reference is the full designator, e.g. "R3"
func (c *Component) Reference() string { return c.reference }

// OriginalReference is the designator as it was parsed
func (c *Component) OriginalReference() string { return c.originalReference }

// Letters is the designator prefix, e.g. "R"
func (c *Component) Letters() string { return c.letters }

// Number returns the designator number and whether one is assigned
func (c *Component) Number() (int, bool) { return c.number, c.hasNumber }

// HasDesignator reports whether the component has a designator number
func (c *Component) HasDesignator() bool { return c.hasNumber }

// Value is the raw value field text
func (c *Component) Value() string { return c.value }

// NumericValue returns the engineering magnitude of the value, if it parses
func (c *Component) NumericValue() (float64, bool) { return c.numericValue, c.hasNumeric }

// FootprintLibrary is the library half of the footprint field
func (c *Component) FootprintLibrary() string { return c.footprintLibrary }

// FootprintName is the footprint half of the footprint field
func (c *Component) FootprintName() string { return c.footprintName }

// UnitNumber is the unit token from the U line, as written
func (c *Component) UnitNumber() string { return c.unitNumber }

// Unit is UnitNumber as an integer, 0 when absent or malformed
func (c *Component) Unit() int {
	n, err := strconv.Atoi(c.unitNumber)
	if err != nil {
		return 0
	}
	return n
}

// Timestamp is the unit timestamp token from the U line
func (c *Component) Timestamp() string { return c.timestamp }

// Fields returns a copy of the parsed field descriptors
func (c *Component) Fields() []Field { return append([]Field(nil), c.fields...) }

// AdditionalLines returns a copy of the unrecognised lines in the block
func (c *Component) AdditionalLines() []string { return append([]string(nil), c.additional...) }

// HasConflict reports whether the last analysis flagged this component.
// The flag is stale while the document is Dirty.
func (c *Component) HasConflict() bool { return c.hasConflict }

// Modified reports whether the designator differs from the parsed one
func (c *Component) Modified() bool { return c.modified }
