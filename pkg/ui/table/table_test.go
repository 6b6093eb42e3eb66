package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	lines := Format([][]string{
		{"REF", "VALUE", "SYMBOL"},
		{"C1", "4.7μF", "Device:C"},
		{"R10", "10k", "Device:R"},
	}, 2)

	assert.Equal(t, []string{
		"REF  VALUE  SYMBOL",
		"C1   4.7μF  Device:C",
		"R10  10k    Device:R",
	}, lines)
}

func TestWidthsRaggedRows(t *testing.T) {
	assert.Equal(t, []int{3, 5}, Widths([][]string{{"a", "hello"}, {"abc"}}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Duplic...", Truncate("Duplicate component references", 9))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "unbounded", Truncate("unbounded", 0))
}
