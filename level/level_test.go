package level_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamstim/level"
)

func TestLevel_Variants(t *testing.T) {
	n := level.Numeric(1.5)
	assert.Equal(t, level.KindNumeric, n.Kind())
	assert.True(t, n.IsNumeric())
	v, ok := n.Float()
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)
	assert.Empty(t, n.Name())

	s := level.Symbol("xvcc")
	assert.Equal(t, level.KindSymbolic, s.Kind())
	assert.False(t, s.IsNumeric())
	_, ok = s.Float()
	assert.False(t, ok)
	assert.Equal(t, "xvcc", s.Name())

	var zero level.Level
	assert.True(t, zero.Equal(level.Numeric(0)), "zero value is Numeric(0)")
}

func TestLevel_SymbolPanicsOnEmptyName(t *testing.T) {
	assert.Panics(t, func() { level.Symbol("") })
}

func TestLevel_Equal(t *testing.T) {
	assert.True(t, level.Symbol("a").Equal(level.Symbol("a")))
	assert.False(t, level.Symbol("a").Equal(level.Symbol("b")))
	assert.False(t, level.Symbol("a").Equal(level.Numeric(0)))
	assert.True(t, level.Numeric(2).Equal(level.Numeric(2)))
	assert.False(t, level.Numeric(2).Equal(level.Numeric(3)))
}

func TestLevel_String(t *testing.T) {
	cases := []struct {
		in   level.Level
		want string
	}{
		{level.Numeric(0), "0"},
		{level.Numeric(-1), "-1"},
		{level.Numeric(1.0 / 3.0), "0.333333"},
		{level.Numeric(1.8e-3), "0.0018"},
		{level.Numeric(1e-8), "1e-08"},
		{level.Symbol("ihold"), "'ihold'"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.String())
	}
	assert.Equal(t, "numeric", level.KindNumeric.String())
	assert.Equal(t, "symbolic", level.KindSymbolic.String())
}

func TestLerp(t *testing.T) {
	got, err := level.Lerp(level.Numeric(5), level.Numeric(10), 0.5)
	require.NoError(t, err)
	assert.True(t, got.Equal(level.Numeric(7.5)))

	// Flat symbolic segment.
	got, err = level.Lerp(level.Symbol("ihold"), level.Symbol("ihold"), 0.3)
	require.NoError(t, err)
	assert.Equal(t, "ihold", got.Name())

	_, err = level.Lerp(level.Numeric(0), level.Symbol("xvcc"), 0.5)
	assert.ErrorIs(t, err, level.ErrSymbolicSpan)

	_, err = level.Lerp(level.Symbol("ileak"), level.Symbol("ihold"), 0.5)
	assert.ErrorIs(t, err, level.ErrSymbolicSpan)
}
