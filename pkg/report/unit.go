package report

import (
	"strconv"

	"fortio.org/safecast"
)

// UnitLetter renders a unit number the way the schematic editor shows it:
// 1 is "A", 2 is "B" and so on. Numbers outside A..Z, and units that did
// not parse, are shown as written.
func UnitLetter(unit string) string {
	n, err := strconv.Atoi(unit)
	if err != nil {
		return unit
	}
	offset, err := safecast.Conv[uint8](n - 1)
	if err != nil || offset > 'Z'-'A' {
		return unit
	}
	return string(rune('A' + offset))
}
