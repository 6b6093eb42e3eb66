package schematic

import (
	"regexp"
	"strconv"
)

var referencePattern = regexp.MustCompile(`^([A-Za-z]+)?(\d+|\?+)?`)

// Reference is a designator split into its letter prefix and numeric suffix.
type Reference struct {
	Raw       string
	Letters   string
	Number    int
	HasNumber bool
}

// ParseReference splits a designator such as "R3" or "U?" into letters and
// number. A trailing run of '?' or a suffix that does not fit an int leaves
// HasNumber false. It never fails.
func ParseReference(s string) Reference {
	ref := Reference{Raw: s}

	parts := referencePattern.FindStringSubmatch(s)
	if parts == nil {
		return ref
	}

	ref.Letters = parts[1]
	if parts[2] == "" || parts[2][0] == '?' {
		return ref
	}

	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return ref
	}
	ref.Number = n
	ref.HasNumber = true
	return ref
}

// FormatReference joins letters and an optional number into a designator
func FormatReference(letters string, number int, hasNumber bool) string {
	if !hasNumber {
		return letters
	}
	return letters + strconv.Itoa(number)
}
