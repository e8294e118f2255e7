// Package units parses and formats SPICE engineering notation ("10n",
// "300ps", "1.2meg") used for timing and amplitude values in run
// configurations and PWL files.
//
// Suffixes are case-insensitive as in SPICE: f p n u m k meg g t, where "m"
// is milli and "meg" is mega. An optional trailing "s" (seconds) is ignored.
package units

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrBadValue indicates a string that is not a number with an optional
// engineering suffix.
var ErrBadValue = errors.New("units: malformed engineering value")

var valueRe = regexp.MustCompile(`^([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)(meg|[tgkmunpf])?s?$`)

// scale maps a suffix to its power of ten.
var scale = map[string]int{
	"t":   12,
	"g":   9,
	"meg": 6,
	"k":   3,
	"m":   -3,
	"u":   -6,
	"n":   -9,
	"p":   -12,
	"f":   -15,
}

// ParseValue parses a plain or engineering-notation number: "1e-08", "10n",
// "300ps", "0.5", "1meg". The suffix is folded into the decimal exponent
// before conversion, so "55n" yields exactly the float64 nearest 55e-9.
func ParseValue(s string) (float64, error) {
	m := valueRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return 0, fmt.Errorf("ParseValue(%q): %w", s, ErrBadValue)
	}
	mant, exp := m[1], 0
	if i := strings.IndexByte(mant, 'e'); i >= 0 {
		e, err := strconv.Atoi(mant[i+1:])
		if err != nil {
			return 0, fmt.Errorf("ParseValue(%q): %w", s, ErrBadValue)
		}
		mant, exp = mant[:i], e
	}
	exp += scale[m[2]]

	v, err := strconv.ParseFloat(mant+"e"+strconv.Itoa(exp), 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, fmt.Errorf("ParseValue(%q): %w", s, ErrBadValue)
	}

	return v, nil
}

// suffixes in descending order of magnitude, for FormatValue.
var suffixes = []struct {
	name string
	mult float64
}{
	{"t", 1e12}, {"g", 1e9}, {"meg", 1e6}, {"k", 1e3},
	{"", 1}, {"m", 1e-3}, {"u", 1e-6}, {"n", 1e-9}, {"p", 1e-12}, {"f", 1e-15},
}

// FormatValue renders v with the largest suffix that keeps the mantissa at
// or above 1, using six significant digits: 1e-08 → "10n", 3e-10 → "300p".
// Zero, non-finite values and values outside the suffix range use %g.
func FormatValue(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	a := math.Abs(v)
	for _, s := range suffixes {
		// Tolerate representation error such as 1e-08/1e-09 = 9.999999999999998.
		if a/s.mult >= 1-1e-9 {
			if a/s.mult >= 1000 {
				break
			}

			return strconv.FormatFloat(roundSig(v/s.mult, 6), 'g', -1, 64) + s.name
		}
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}

// roundSig rounds v to digits significant digits.
func roundSig(v float64, digits int) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'g', digits, 64), 64)

	return r
}
