package schematic

import (
	"strconv"
	"strings"
)

// Well-known field numbers
const (
	FieldReference = 0
	FieldValue     = 1
	FieldFootprint = 2
	FieldDatasheet = 3
)

// Position is a field anchor in schematic units, kept as written
type Position struct {
	X string
	Y string
}

// Field is one parsed `F` line of a component block:
//
//	F 1 "100k" H 2650 1301 50  0000 C CNN
//
// Text is stored unescaped. Lines that do not follow this layout are kept in
// Raw and written back unchanged.
type Field struct {
	Number      int
	Text        string
	Orientation string
	Position    Position
	Size        string
	Flags       string
	HJustify    string
	VJustify    string
	Italic      string
	Bold        string
	// Extra holds trailing tokens, such as the quoted name of a user field
	Extra []string

	Raw string
}

// IsRaw reports whether the line could not be parsed as a field descriptor
func (f Field) IsRaw() bool {
	return f.Raw != ""
}

// ParseField parses one `F` line. The second result is false when the line
// does not match the field layout; the returned Field then carries the line
// in Raw.
func ParseField(line string) (Field, bool) {
	raw := Field{Raw: line}

	rest, ok := strings.CutPrefix(line, "F ")
	if !ok {
		return raw, false
	}

	numTok, rest, ok := strings.Cut(rest, " ")
	if !ok {
		return raw, false
	}
	number, err := strconv.Atoi(numTok)
	if err != nil {
		return raw, false
	}

	text, rest, ok := cutQuoted(rest)
	if !ok {
		return raw, false
	}

	tokens := strings.Fields(rest)
	if len(tokens) < 7 || len(tokens[6]) != 3 {
		return raw, false
	}

	style := tokens[6]
	return Field{
		Number:      number,
		Text:        text,
		Orientation: tokens[0],
		Position:    Position{X: tokens[1], Y: tokens[2]},
		Size:        tokens[3],
		Flags:       tokens[4],
		HJustify:    tokens[5],
		VJustify:    style[0:1],
		Italic:      style[1:2],
		Bold:        style[2:3],
		Extra:       append([]string(nil), tokens[7:]...),
	}, true
}

// String renders the field back to its line form
func (f Field) String() string {
	if f.IsRaw() {
		return f.Raw
	}

	var b strings.Builder
	b.WriteString("F ")
	b.WriteString(strconv.Itoa(f.Number))
	b.WriteByte(' ')
	b.WriteString(quoteText(f.Text))
	for _, tok := range []string{f.Orientation, f.Position.X, f.Position.Y, f.Size} {
		b.WriteByte(' ')
		b.WriteString(tok)
	}
	// The size and flags columns are separated by two spaces in files
	// written by Eeschema.
	b.WriteString("  ")
	b.WriteString(f.Flags)
	b.WriteByte(' ')
	b.WriteString(f.HJustify)
	b.WriteByte(' ')
	b.WriteString(f.VJustify + f.Italic + f.Bold)
	for _, tok := range f.Extra {
		b.WriteByte(' ')
		b.WriteString(tok)
	}
	return b.String()
}

// cutQuoted reads a double-quoted token at the start of s, honouring \"
// escapes, and returns the unescaped text and the remainder after it.
func cutQuoted(s string) (string, string, bool) {
	if !strings.HasPrefix(s, `"`) {
		return "", s, false
	}

	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s) && s[i+1] == '"':
			b.WriteByte('"')
			i++
		case c == '"':
			return b.String(), s[i+1:], true
		default:
			b.WriteByte(c)
		}
	}
	return "", s, false
}

func quoteText(text string) string {
	return `"` + strings.ReplaceAll(text, `"`, `\"`) + `"`
}
