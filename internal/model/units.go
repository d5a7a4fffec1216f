package model

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// feetInchesPattern matches feet-inches text such as `4'6"`, `4' 6"` or `4'`.
var feetInchesPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)'\s*(?:(\d+(?:\.\d+)?)\s*")?$`)

// ParseFeetInches converts a length string into decimal feet. Accepted forms
// are feet-inches (`4'6"`), bare feet (`4'`), and a plain decimal number.
// The second return value is false when the text does not parse; callers
// decide whether that drops a record (CSV import) or defaults to zero
// (manual entry).
func ParseFeetInches(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if m := feetInchesPattern.FindStringSubmatch(s); m != nil {
		feet, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		if m[2] != "" {
			inches, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return 0, false
			}
			feet += inches / 12
		}
		return feet, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatFeetInches renders decimal feet as feet-inches text, e.g. 4.5 -> 4'6".
// Inches are rounded to the nearest whole inch, carrying into feet at 12.
func FormatFeetInches(v float64) string {
	neg := v < 0
	v = math.Abs(v)

	feet := int(v)
	inches := int(math.Round((v - float64(feet)) * 12))
	if inches == 12 {
		feet++
		inches = 0
	}

	var out string
	if inches == 0 {
		out = fmt.Sprintf("%d'", feet)
	} else {
		out = fmt.Sprintf("%d'%d\"", feet, inches)
	}
	if neg {
		out = "-" + out
	}
	return out
}
