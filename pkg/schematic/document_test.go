// Test Type: Unit Test
// Description: Tests for scanning schematic text into documents

package schematic_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/schematic"
	"github.com/arthur-debert/schanno/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *schematic.Document {
	t.Helper()
	doc, err := schematic.Parse("board.sch", text)
	require.NoError(t, err)
	return doc
}

func references(doc *schematic.Document) []string {
	var refs []string
	for _, c := range doc.Components() {
		refs = append(refs, c.Reference())
	}
	return refs
}

func TestParse(t *testing.T) {
	t.Run("components_in_file_order", func(t *testing.T) {
		text := testutil.Schematic(
			testutil.Block(testutil.Part{Ref: "R2", Value: "10k"}),
			testutil.PowerFlag("#PWR01", "GND"),
			testutil.Block(testutil.Part{Ref: "R1", Value: "100k"}),
			testutil.Block(testutil.Part{Symbol: "Device:C", Ref: "C1", Value: "100n"}),
		)

		doc := mustParse(t, text)

		assert.Equal(t, 3, doc.Len())
		assert.Equal(t, []string{"R2", "R1", "C1"}, references(doc))
		for i := 0; i < doc.Len(); i++ {
			c, err := doc.Component(i)
			require.NoError(t, err)
			assert.Equal(t, i, c.Index())
		}
		assert.Equal(t, schematic.StateAnalyzed, doc.State())
		assert.Equal(t, "board.sch", doc.Filename())
		assert.Equal(t, text, doc.OriginalText())
		assert.Len(t, doc.OriginalLines(), strings.Count(text, "\n"))
	})

	t.Run("empty_text", func(t *testing.T) {
		doc := mustParse(t, "")
		assert.Equal(t, 0, doc.Len())

		out, err := doc.Generate()
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("nested_block_start_closes_pending", func(t *testing.T) {
		first := blockLines(testutil.Block(testutil.Part{Ref: "R1", Value: "1k"}))
		first = first[:len(first)-1]
		text := testutil.Schematic(
			strings.Join(first, "\n"),
			testutil.Block(testutil.Part{Ref: "R2", Value: "2k"}),
		)

		doc := mustParse(t, text)

		assert.Equal(t, []string{"R1", "R2"}, references(doc))
		out, err := doc.Generate()
		require.NoError(t, err)
		assert.Equal(t, text, out)
	})

	t.Run("unterminated_block_at_end_of_file", func(t *testing.T) {
		text := testutil.Header + "\n" + strings.TrimSuffix(
			testutil.Block(testutil.Part{Ref: "R1", Value: "1k"}), "\n$EndComp")

		doc := mustParse(t, text)

		assert.Equal(t, []string{"R1"}, references(doc))
		out, err := doc.Generate()
		require.NoError(t, err)
		assert.Equal(t, text, out)
	})

	t.Run("stray_end_marker_is_plain_text", func(t *testing.T) {
		text := testutil.Schematic("$EndComp", testutil.Block(testutil.Part{Ref: "R1", Value: "1k"}))

		doc := mustParse(t, text)
		assert.Equal(t, 1, doc.Len())
	})

	t.Run("start_marker_must_match_exactly", func(t *testing.T) {
		doc := mustParse(t, testutil.Schematic("$Comp extra", "$EndComp"))
		assert.Equal(t, 0, doc.Len())
	})
}

func TestDocumentComponentIndex(t *testing.T) {
	doc := mustParse(t, testutil.Parts(testutil.Part{Ref: "R1", Value: "1k"}))

	_, err := doc.Component(1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexMismatch))

	_, err = doc.Component(-1)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexMismatch))
}

func TestSuggestedFilename(t *testing.T) {
	doc, err := schematic.Parse("", "")
	require.NoError(t, err)
	assert.Equal(t, schematic.DefaultFilename, doc.SuggestedFilename())

	doc = mustParse(t, "")
	assert.Equal(t, "board.sch", doc.SuggestedFilename())
}
