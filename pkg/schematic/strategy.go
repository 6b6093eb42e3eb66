package schematic

import (
	"strings"

	"github.com/arthur-debert/schanno/pkg/errors"
)

// FixStrategy selects how a duplicate problem is resolved
type FixStrategy string

const (
	// FixIncrementAll shifts later designators up to make room for the
	// duplicates right after the canonical one
	FixIncrementAll FixStrategy = "increment_all"
	// FixNextAvailable gives each duplicate the lowest free number above
	// the canonical one
	FixNextAvailable FixStrategy = "next_available"
)

// FixStrategies lists every fix strategy in display order
var FixStrategies = []FixStrategy{FixIncrementAll, FixNextAvailable}

// Valid reports whether s is a known fix strategy
func (s FixStrategy) Valid() bool {
	for _, known := range FixStrategies {
		if s == known {
			return true
		}
	}
	return false
}

// Description is a one-line explanation suitable for prompts and help
func (s FixStrategy) Description() string {
	switch s {
	case FixIncrementAll:
		return "Increment each duplicate designator by one, shifting all components that come after"
	case FixNextAvailable:
		return "Use the first next available reference for duplicated components"
	}
	return ""
}

// ParseFixStrategy maps a selector such as "increment_all" or
// "next-available" to a FixStrategy
func ParseFixStrategy(s string) (FixStrategy, error) {
	strategy := FixStrategy(normalizeSelector(s))
	if !strategy.Valid() {
		return "", errors.Newf(errors.ErrUnknownStrategy, "unknown fix strategy %q", s).
			WithDetail("known", FixStrategies)
	}
	return strategy, nil
}

// AnnotateStrategy selects the order in which value groups are numbered
type AnnotateStrategy string

const (
	AnnotateMostCommonFirst   AnnotateStrategy = "most_common_first"
	AnnotateLeastCommonFirst  AnnotateStrategy = "least_common_first"
	AnnotateLowestValueFirst  AnnotateStrategy = "lowest_value_first"
	AnnotateHighestValueFirst AnnotateStrategy = "highest_value_first"
)

// AnnotateStrategies lists every annotation strategy in display order
var AnnotateStrategies = []AnnotateStrategy{
	AnnotateMostCommonFirst,
	AnnotateLeastCommonFirst,
	AnnotateLowestValueFirst,
	AnnotateHighestValueFirst,
}

// Valid reports whether s is a known annotation strategy
func (s AnnotateStrategy) Valid() bool {
	for _, known := range AnnotateStrategies {
		if s == known {
			return true
		}
	}
	return false
}

// Description is a one-line explanation suitable for prompts and help
func (s AnnotateStrategy) Description() string {
	switch s {
	case AnnotateMostCommonFirst:
		return "Values used by the most parts get the lowest numbers"
	case AnnotateLeastCommonFirst:
		return "Values used by the fewest parts get the lowest numbers"
	case AnnotateLowestValueFirst:
		return "Smallest values get the lowest numbers"
	case AnnotateHighestValueFirst:
		return "Largest values get the lowest numbers"
	}
	return ""
}

// ParseAnnotateStrategy maps a selector such as "least_common_first" to an
// AnnotateStrategy
func ParseAnnotateStrategy(s string) (AnnotateStrategy, error) {
	strategy := AnnotateStrategy(normalizeSelector(s))
	if !strategy.Valid() {
		return "", errors.Newf(errors.ErrUnknownStrategy, "unknown annotation strategy %q", s).
			WithDetail("known", AnnotateStrategies)
	}
	return strategy, nil
}

func normalizeSelector(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}
