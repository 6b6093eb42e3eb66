// Test Type: Unit Test
// Description: Tests for building components from block lines

package schematic_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/logging"
	"github.com/arthur-debert/schanno/pkg/schematic"
	"github.com/arthur-debert/schanno/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockLines(block string) []string {
	return strings.Split(block, "\n")
}

func TestComponentFromLines(t *testing.T) {
	t.Run("resistor_block", func(t *testing.T) {
		lines := blockLines(testutil.Block(testutil.Part{Ref: "R3", Value: "100k"}))

		comp, err := schematic.ComponentFromLines(lines)
		require.NoError(t, err)
		require.NotNil(t, comp)

		assert.Equal(t, "Device", comp.Library())
		assert.Equal(t, "R", comp.Name())
		assert.Equal(t, "Device:R", comp.Symbol())
		assert.Equal(t, "R3", comp.Reference())
		assert.Equal(t, "R", comp.Letters())
		n, ok := comp.Number()
		assert.True(t, ok)
		assert.Equal(t, 3, n)
		assert.Equal(t, "100k", comp.Value())
		v, ok := comp.NumericValue()
		assert.True(t, ok)
		assert.Equal(t, 100000.0, v)
		assert.Equal(t, "Resistor_SMD", comp.FootprintLibrary())
		assert.Equal(t, "R_0805_2012Metric", comp.FootprintName())
		assert.Equal(t, "1", comp.UnitNumber())
		assert.Equal(t, 1, comp.Unit())
		assert.Equal(t, "5E7A0ED8", comp.Timestamp())
		assert.Len(t, comp.Fields(), 4)
		assert.Len(t, comp.AdditionalLines(), 2)
		assert.Equal(t, -1, comp.Index())
		assert.False(t, comp.Modified())
		assert.Equal(t, lines, comp.Lines())
	})

	t.Run("unassigned_multi_unit_part", func(t *testing.T) {
		lines := blockLines(testutil.Block(testutil.Part{
			Symbol: "Amplifier_Operational:LM324",
			Ref:    "U?",
			Value:  "LM324",
			Unit:   3,
		}))

		comp, err := schematic.ComponentFromLines(lines)
		require.NoError(t, err)

		assert.Equal(t, "U", comp.Letters())
		assert.False(t, comp.HasDesignator())
		assert.Equal(t, "3", comp.UnitNumber())
		_, ok := comp.NumericValue()
		assert.False(t, ok)
	})

	t.Run("symbol_without_library", func(t *testing.T) {
		lines := blockLines(testutil.Block(testutil.Part{Symbol: "R", Ref: "R1", Value: "1k"}))

		comp, err := schematic.ComponentFromLines(lines)
		require.NoError(t, err)

		assert.Equal(t, "", comp.Library())
		assert.Equal(t, "R", comp.Symbol())
	})

	t.Run("power_flag_is_skipped", func(t *testing.T) {
		comp, err := schematic.ComponentFromLines(blockLines(testutil.PowerFlag("#PWR01", "GND")))
		require.NoError(t, err)
		assert.Nil(t, comp)
	})

	t.Run("missing_end_marker_still_builds", func(t *testing.T) {
		lines := blockLines(testutil.Block(testutil.Part{Ref: "R1", Value: "1k"}))
		lines = lines[:len(lines)-1]

		comp, err := schematic.ComponentFromLines(lines)
		require.NoError(t, err)
		require.NotNil(t, comp)
		assert.Equal(t, "R1", comp.Reference())
	})

	t.Run("empty_input", func(t *testing.T) {
		_, err := schematic.ComponentFromLines(nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFormat))
	})

	t.Run("wrong_first_line", func(t *testing.T) {
		_, err := schematic.ComponentFromLines([]string{"L Device:R R1", "$EndComp"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFormat))
	})

	t.Run("missing_end_line_warns", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", t.TempDir())
		var buf bytes.Buffer
		logging.SetupLoggerWithOutput(0, &buf)
		t.Cleanup(func() { logging.SetupLoggerWithOutput(0, io.Discard) })

		lines := blockLines(testutil.Block(testutil.Part{Ref: "R9", Value: "1k"}))
		lines = lines[:len(lines)-1]

		comp, err := schematic.ComponentFromLines(lines)
		require.NoError(t, err)
		assert.Equal(t, "R9", comp.Reference())
		assert.Contains(t, buf.String(), "Component block does not end with '$EndComp'")
	})

	t.Run("malformed_field_kept_raw", func(t *testing.T) {
		lines := blockLines(testutil.Block(testutil.Part{Ref: "R1", Value: "1k"}))
		lines = append(lines[:len(lines)-1], "F 4 broken", "$EndComp")

		comp, err := schematic.ComponentFromLines(lines)
		require.NoError(t, err)

		fields := comp.Fields()
		require.Len(t, fields, 5)
		assert.True(t, fields[4].IsRaw())
		assert.Equal(t, "1k", comp.Value())
	})
}
