// Test Type: Unit Test
// Description: Tests for duplicate designator resolution strategies

package schematic_test

import (
	"testing"

	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/schematic"
	"github.com/arthur-debert/schanno/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIncrementAll(t *testing.T) {
	t.Run("shifts_later_designators", func(t *testing.T) {
		doc := mustParse(t, testutil.Parts(
			testutil.Part{Ref: "R1", Value: "100k"},
			testutil.Part{Ref: "R1", Value: "10k"},
			testutil.Part{Ref: "R2", Value: "1k"},
		))
		problems := currentProblems(t, doc)
		require.Len(t, problems, 1)

		require.NoError(t, doc.Resolve(problems[0], schematic.FixIncrementAll))

		assert.Equal(t, []string{"R1", "R2", "R3"}, references(doc))
		doc.Analyze()
		assert.Empty(t, currentProblems(t, doc))
	})

	t.Run("three_members_reserve_two_numbers", func(t *testing.T) {
		doc := mustParse(t, testutil.Parts(
			testutil.Part{Ref: "R2", Value: "1k"},
			testutil.Part{Ref: "R1", Value: "1k"},
			testutil.Part{Ref: "R2", Value: "2k"},
			testutil.Part{Ref: "R3", Value: "1k"},
			testutil.Part{Ref: "R2", Value: "3k"},
			testutil.Part{Symbol: "Device:C", Ref: "C3", Value: "1u"},
		))

		require.NoError(t, doc.ResolveAll(schematic.FixIncrementAll))

		assert.Equal(t, []string{"R2", "R1", "R3", "R5", "R4", "C3"}, references(doc))
		assert.Empty(t, currentProblems(t, doc))
	})

	t.Run("other_classes_untouched", func(t *testing.T) {
		doc := mustParse(t, testutil.Parts(
			testutil.Part{Ref: "R1", Value: "1k"},
			testutil.Part{Ref: "R1", Value: "1k"},
			testutil.Part{Symbol: "Device:C", Ref: "C2", Value: "1u"},
		))

		require.NoError(t, doc.ResolveAll(schematic.FixIncrementAll))

		assert.Equal(t, []string{"R1", "R2", "C2"}, references(doc))
	})
}

func TestResolveNextAvailable(t *testing.T) {
	// R3 is free above the canonical R1, so the second R1 takes it rather
	// than jumping past the highest number in use.
	t.Run("fills_first_gap", func(t *testing.T) {
		doc := mustParse(t, testutil.Parts(
			testutil.Part{Ref: "R1", Value: "1k"},
			testutil.Part{Ref: "R1", Value: "2k"},
			testutil.Part{Ref: "R2", Value: "1k"},
			testutil.Part{Ref: "R4", Value: "1k"},
		))

		require.NoError(t, doc.ResolveAll(schematic.FixNextAvailable))

		assert.Equal(t, []string{"R1", "R3", "R2", "R4"}, references(doc))
		assert.Empty(t, currentProblems(t, doc))
	})

	t.Run("each_member_gets_its_own_number", func(t *testing.T) {
		doc := mustParse(t, testutil.Parts(
			testutil.Part{Ref: "R5", Value: "1k"},
			testutil.Part{Ref: "R5", Value: "2k"},
			testutil.Part{Ref: "R5", Value: "3k"},
			testutil.Part{Ref: "R7", Value: "1k"},
		))

		require.NoError(t, doc.ResolveAll(schematic.FixNextAvailable))

		assert.Equal(t, []string{"R5", "R6", "R8", "R7"}, references(doc))
	})

	t.Run("numbers_below_canonical_are_not_used", func(t *testing.T) {
		doc := mustParse(t, testutil.Parts(
			testutil.Part{Ref: "R3", Value: "1k"},
			testutil.Part{Ref: "R3", Value: "2k"},
		))

		require.NoError(t, doc.ResolveAll(schematic.FixNextAvailable))

		assert.Equal(t, []string{"R3", "R4"}, references(doc))
	})
}

func TestResolveEdgeCases(t *testing.T) {
	duplicates := func(t *testing.T) (*schematic.Document, schematic.Problem) {
		doc := mustParse(t, testutil.Parts(
			testutil.Part{Ref: "R1", Value: "1k"},
			testutil.Part{Ref: "R1", Value: "2k"},
		))
		problems := currentProblems(t, doc)
		require.Len(t, problems, 1)
		return doc, problems[0]
	}

	t.Run("unknown_strategy_is_noop", func(t *testing.T) {
		doc, problem := duplicates(t)

		require.NoError(t, doc.Resolve(problem, schematic.FixStrategy("shuffle")))

		assert.Equal(t, []string{"R1", "R1"}, references(doc))
		assert.Equal(t, schematic.StateAnalyzed, doc.State())
	})

	t.Run("foreign_problem_rejected", func(t *testing.T) {
		doc, _ := duplicates(t)
		_, foreign := duplicates(t)

		err := doc.Resolve(foreign, schematic.FixIncrementAll)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexMismatch))
		assert.Equal(t, []string{"R1", "R1"}, references(doc))
	})

	t.Run("single_member_problem_is_noop", func(t *testing.T) {
		doc, problem := duplicates(t)
		problem.Members = problem.Members[:1]

		require.NoError(t, doc.Resolve(problem, schematic.FixIncrementAll))
		assert.Equal(t, schematic.StateAnalyzed, doc.State())
	})

	t.Run("resolve_all_requires_fresh_analysis", func(t *testing.T) {
		doc, problem := duplicates(t)
		require.NoError(t, doc.Resolve(problem, schematic.FixIncrementAll))

		err := doc.ResolveAll(schematic.FixIncrementAll)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrStaleAnalysis))
	})

	t.Run("resolved_members_clear_conflict_flag", func(t *testing.T) {
		doc, problem := duplicates(t)
		require.NoError(t, doc.Resolve(problem, schematic.FixNextAvailable))

		for _, c := range doc.Components() {
			assert.False(t, c.HasConflict())
		}
	})
}

func TestChanges(t *testing.T) {
	doc := mustParse(t, testutil.Parts(
		testutil.Part{Ref: "R1", Value: "100k"},
		testutil.Part{Ref: "R1", Value: "10k"},
	))
	assert.Empty(t, doc.Changes())

	require.NoError(t, doc.ResolveAll(schematic.FixIncrementAll))

	assert.Equal(t, []schematic.Change{
		{Index: 1, Unit: "1", Before: "R1", After: "R2"},
	}, doc.Changes())
	comps := doc.Components()
	assert.False(t, comps[0].Modified())
	assert.True(t, comps[1].Modified())
	assert.Equal(t, "R1", comps[1].OriginalReference())
}
