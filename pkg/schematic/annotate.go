package schematic

import (
	"sort"

	"github.com/arthur-debert/schanno/pkg/logging"
)

// partBucket holds the units of one physical part. It never holds two
// components with the same unit number.
type partBucket struct {
	reference string
	units     map[string]bool
	members   []*Component
}

// valueGroup is every component of one class sharing a value string
type valueGroup struct {
	value   string
	buckets []*partBucket
}

func (g *valueGroup) add(c *Component) {
	for _, b := range g.buckets {
		if b.reference == c.reference && !b.units[c.unitNumber] {
			b.units[c.unitNumber] = true
			b.members = append(b.members, c)
			return
		}
	}
	g.buckets = append(g.buckets, &partBucket{
		reference: c.reference,
		units:     map[string]bool{c.unitNumber: true},
		members:   []*Component{c},
	})
}

func (g *valueGroup) numeric() (float64, bool) {
	return g.buckets[0].members[0].NumericValue()
}

// classGroup is every component sharing a designator prefix
type classGroup struct {
	letters string
	values  []*valueGroup
	byValue map[string]*valueGroup
}

// Annotate renumbers every component. Existing duplicates are first
// resolved with FixIncrementAll. Then, for each designator prefix, values
// are ordered by strategy and part buckets are numbered from 1, all units of
// one part sharing a number. The document is analyzed again at the end.
// An unknown strategy changes nothing.
func (d *Document) Annotate(strategy AnnotateStrategy) error {
	logger := logging.GetLogger("schematic")
	if !strategy.Valid() {
		logger.Debug().Str("strategy", string(strategy)).Msg("Ignoring unknown annotation strategy")
		return nil
	}

	done := logging.LogOperationStart(logger, "annotate")
	defer done()

	d.Analyze()
	if err := d.ResolveAll(FixIncrementAll); err != nil {
		return err
	}

	less := valueGroupOrder(strategy)
	for _, class := range d.classGroups() {
		sort.SliceStable(class.values, func(i, j int) bool {
			return less(class.values[i], class.values[j])
		})

		n := 1
		for _, group := range class.values {
			for _, bucket := range group.buckets {
				for _, c := range bucket.members {
					c.setNumber(n)
				}
				n++
			}
		}

		logger.Debug().
			Str("letters", class.letters).
			Int("values", len(class.values)).
			Int("parts", n-1).
			Msg("Annotated component class")
	}

	d.Analyze()

	logger.Info().
		Str("strategy", string(strategy)).
		Int("changed", len(d.Changes())).
		Msg("Annotated schematic")
	return nil
}

// classGroups groups components by prefix, then by value, in first
// encounter order. Components without a letter prefix are left out.
func (d *Document) classGroups() []*classGroup {
	var classes []*classGroup
	byLetters := make(map[string]*classGroup)

	for _, c := range d.components {
		if c.letters == "" {
			continue
		}

		class, ok := byLetters[c.letters]
		if !ok {
			class = &classGroup{letters: c.letters, byValue: make(map[string]*valueGroup)}
			byLetters[c.letters] = class
			classes = append(classes, class)
		}

		group, ok := class.byValue[c.value]
		if !ok {
			group = &valueGroup{value: c.value}
			class.byValue[c.value] = group
			class.values = append(class.values, group)
		}
		group.add(c)
	}
	return classes
}

// valueGroupOrder returns the strict ordering used to sort value groups.
// Groups with an unparsable value sort after all others for both value
// strategies.
func valueGroupOrder(strategy AnnotateStrategy) func(a, b *valueGroup) bool {
	switch strategy {
	case AnnotateMostCommonFirst:
		return func(a, b *valueGroup) bool { return len(a.buckets) > len(b.buckets) }
	case AnnotateLeastCommonFirst:
		return func(a, b *valueGroup) bool { return len(a.buckets) < len(b.buckets) }
	case AnnotateLowestValueFirst:
		return byNumeric(func(x, y float64) bool { return x < y })
	case AnnotateHighestValueFirst:
		return byNumeric(func(x, y float64) bool { return x > y })
	}
	return func(a, b *valueGroup) bool { return false }
}

func byNumeric(before func(x, y float64) bool) func(a, b *valueGroup) bool {
	return func(a, b *valueGroup) bool {
		x, okA := a.numeric()
		y, okB := b.numeric()
		switch {
		case okA && okB:
			return before(x, y)
		case okA:
			return true
		default:
			return false
		}
	}
}
