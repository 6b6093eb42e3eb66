package schematic

import (
	"regexp"
	"strconv"
)

// Only the leading integer run is the magnitude. Fractional digits are
// dropped but a prefix after them still applies: "4.7u" yields 4e-6, "4k7"
// yields 4000.
var valuePattern = regexp.MustCompile(`^\s*(\d+)(?:\.\d*)?\s*([yzafpnμumkMGTPEZY])?`)

// SI prefixes used in component values. Deci, centi, deca and hecto are left
// out; 'u' is accepted as a spelling of micro.
var siMultipliers = map[string]float64{
	"y": 1e-24,
	"z": 1e-21,
	"a": 1e-18,
	"f": 1e-15,
	"p": 1e-12,
	"n": 1e-9,
	"u": 1e-6,
	"μ": 1e-6,
	"m": 1e-3,
	"k": 1e3,
	"M": 1e6,
	"G": 1e9,
	"T": 1e12,
	"P": 1e15,
	"E": 1e18,
	"Z": 1e21,
	"Y": 1e24,
}

// ParseValue converts a component value such as "100k" or "10uF" to its
// magnitude. The second result is false when s does not start with digits.
// Trailing unit text is ignored.
func ParseValue(s string) (float64, bool) {
	m := valuePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	if m[2] == "" {
		return magnitude, true
	}
	return magnitude * siMultipliers[m[2]], true
}
