package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamstim/units"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"1e-08", 1e-8},
		{"5.5e-08", 5.5e-8},
		{"10n", 10e-9},
		{"10ns", 10e-9},
		{"300p", 300e-12},
		{"300PS", 300e-12},
		{"2N", 2e-9},
		{"-5n", -5e-9},
		{"+1.5u", 1.5e-6},
		{".5", 0.5},
		{"1m", 1e-3},
		{"1meg", 1e6},
		{"1MEG", 1e6},
		{"3.3k", 3300},
		{"1f", 1e-15},
		{"2g", 2e9},
		{"1t", 1e12},
		{"  7n  ", 7e-9},
		{"1e3k", 1e6},
	}
	for _, tc := range cases {
		got, err := units.ParseValue(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.InEpsilon(t, tc.want+1e-300, got+1e-300, 1e-12, "input %q", tc.in)
	}
}

func TestParseValue_ExactDecimal(t *testing.T) {
	cases := map[string]float64{
		"55n":    55e-9,
		"5.5e-8": 5.5e-8,
		"300p":   300e-12,
		"150ps":  150e-12,
		"2.2u":   2.2e-6,
		"1.5e3n": 1.5e-6,
		"350m":   0.35,
	}
	for in, want := range cases {
		got, err := units.ParseValue(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseValue_Invalid(t *testing.T) {
	for _, in := range []string{"", "n", "abc", "1x", "1.2.3", "--1", "1 n", "e5", "1e400", "1e99999999999999999999"} {
		_, err := units.ParseValue(in)
		assert.ErrorIs(t, err, units.ErrBadValue, "input %q", in)
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10e-9, "10n"},
		{1e-8, "10n"},
		{300e-12, "300p"},
		{55e-9, "55n"},
		{5e-9, "5n"},
		{1.5, "1.5"},
		{-2e-9, "-2n"},
		{1e6, "1meg"},
		{0.4, "400m"},
		{1e-18, "1e-18"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, units.FormatValue(tc.in), "value %g", tc.in)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, v := range []float64{10e-9, 55e-9, 300e-12, 2e-9, 1.25e-3, 0.35, 3.3, 12e3} {
		got, err := units.ParseValue(units.FormatValue(v))
		require.NoError(t, err)
		assert.InEpsilon(t, v, got, 1e-9)
	}
}
