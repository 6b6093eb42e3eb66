// Test Type: Unit Test
// Description: Tests for component field line parsing and rendering

package schematic_test

import (
	"testing"

	"github.com/arthur-debert/schanno/pkg/schematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	t.Run("reference_field", func(t *testing.T) {
		line := `F 0 "R1" H 2650 1392 50  0000 C CNN`

		field, ok := schematic.ParseField(line)
		require.True(t, ok)

		assert.Equal(t, schematic.FieldReference, field.Number)
		assert.Equal(t, "R1", field.Text)
		assert.Equal(t, "H", field.Orientation)
		assert.Equal(t, schematic.Position{X: "2650", Y: "1392"}, field.Position)
		assert.Equal(t, "50", field.Size)
		assert.Equal(t, "0000", field.Flags)
		assert.Equal(t, "C", field.HJustify)
		assert.Equal(t, "C", field.VJustify)
		assert.Equal(t, "N", field.Italic)
		assert.Equal(t, "N", field.Bold)
		assert.Empty(t, field.Extra)
		assert.False(t, field.IsRaw())
		assert.Equal(t, line, field.String())
	})

	t.Run("user_field_with_name", func(t *testing.T) {
		line := `F 4 "Yageo" H 2650 1150 50  0001 C CNN "Manufacturer"`

		field, ok := schematic.ParseField(line)
		require.True(t, ok)

		assert.Equal(t, 4, field.Number)
		assert.Equal(t, []string{`"Manufacturer"`}, field.Extra)
		assert.Equal(t, line, field.String())
	})

	t.Run("escaped_quotes", func(t *testing.T) {
		line := `F 1 "12\" rail" H 2650 1301 50  0000 C CNN`

		field, ok := schematic.ParseField(line)
		require.True(t, ok)

		assert.Equal(t, `12" rail`, field.Text)
		assert.Equal(t, line, field.String())
	})

	t.Run("text_with_spaces", func(t *testing.T) {
		field, ok := schematic.ParseField(`F 3 "see data sheet" H 2650 1150 50  0001 C CNN`)
		require.True(t, ok)
		assert.Equal(t, "see data sheet", field.Text)
	})

	t.Run("malformed_lines_stay_raw", func(t *testing.T) {
		for _, line := range []string{
			"F1 broken",
			`F x "R1" H 2650 1392 50  0000 C CNN`,
			`F 0 "unterminated H 2650`,
			`F 0 "R1" H 2650 1392`,
			`F 0 "R1" H 2650 1392 50  0000 C CN`,
		} {
			field, ok := schematic.ParseField(line)
			assert.False(t, ok, line)
			assert.True(t, field.IsRaw(), line)
			assert.Equal(t, line, field.String())
		}
	})
}
