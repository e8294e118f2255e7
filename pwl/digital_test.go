package pwl_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamstim/debruijn"
	"github.com/katalvlaran/pamstim/level"
	"github.com/katalvlaran/pamstim/pwl"
)

// unitTiming uses round numbers so expected breakpoints are exact.
func unitTiming(td float64) []pwl.Option {
	return []pwl.Option{
		pwl.WithBitTime(10),
		pwl.WithInterval(6),
		pwl.WithDelay(td),
		pwl.WithRiseTime(1),
		pwl.WithSetupMargin(2),
	}
}

func TestBuildDigital_PositiveDelay(t *testing.T) {
	enable, data, err := pwl.BuildDigital([]int{1, 0}, level.DefaultRail(), unitTiming(5)...)
	require.NoError(t, err)

	assertTrace(t, pwl.Trace{
		bp(0, 0), bp(3, 0),
		sym(4, "ihold"), sym(18, "ihold"), bp(19, 0), bp(21, 0),
		sym(22, "ileak"), sym(36, "ileak"), bp(37, 0), bp(39, 0),
	}, enable)

	assertTrace(t, pwl.Trace{
		bp(0, 0), bp(5, 0),
		sym(6, "xvcc"), sym(16, "xvcc"), bp(17, 0), bp(23, 0),
		sym(24, "xvcc"), sym(34, "xvcc"), bp(35, 0), bp(41, 0),
	}, data)
}

func TestBuildDigital_NegativeDelayStartsBeforeOrigin(t *testing.T) {
	enable, data, err := pwl.BuildDigital([]int{1}, level.DefaultRail(), unitTiming(-5)...)
	require.NoError(t, err)

	assertTrace(t, pwl.Trace{
		bp(-7, 0), sym(-6, "ihold"), sym(8, "ihold"), bp(9, 0), bp(11, 0),
	}, enable)
	assertTrace(t, pwl.Trace{
		bp(-5, 0), sym(-4, "xvcc"), sym(6, "xvcc"), bp(7, 0), bp(13, 0),
	}, data)

	// The origin falls inside flat segments, so both traces clip cleanly.
	ce, err := pwl.Clip(enable)
	require.NoError(t, err)
	assertTrace(t, pwl.Trace{sym(0, "ihold"), sym(8, "ihold"), bp(9, 0), bp(11, 0)}, ce)

	cd, err := pwl.Clip(data)
	require.NoError(t, err)
	assertTrace(t, pwl.Trace{sym(0, "xvcc"), sym(6, "xvcc"), bp(7, 0), bp(13, 0)}, cd)
}

func TestBuildDigital_ZeroDelay(t *testing.T) {
	// Rise time equal to the setup margin keeps the first enable edge at t = 0.
	opts := append(unitTiming(0), pwl.WithRiseTime(2))
	enable, data, err := pwl.BuildDigital([]int{0}, level.DefaultRail(), opts...)
	require.NoError(t, err)

	// No extra hold breakpoint when the delay is exactly zero.
	assertTrace(t, pwl.Trace{
		bp(0, 0), sym(0, "ileak"), sym(14, "ileak"), bp(16, 0), bp(18, 0),
	}, enable)
	assertTrace(t, pwl.Trace{
		bp(0, 0), sym(2, "xvcc"), sym(12, "xvcc"), bp(14, 0), bp(20, 0),
	}, data)

	// Shorter rise time pulls the enable edge before the origin hold.
	_, _, err = pwl.BuildDigital([]int{0}, level.DefaultRail(), unitTiming(0)...)
	assert.ErrorIs(t, err, pwl.ErrNonMonotonic)
}

func TestBuildDigital_SymbolPeriod(t *testing.T) {
	pattern := debruijn.Extend(debruijn.MustGenerate(2, 3), 3)
	tm := pwl.Resolve(unitTiming(5)...)
	_, data, err := pwl.BuildDigital(pattern, level.DefaultRail(), unitTiming(5)...)
	require.NoError(t, err)

	require.Len(t, data, 2+4*len(pattern))
	for i := range pattern {
		rise := data[2+4*i]
		assert.InDelta(t, 5+tm.RiseTime+float64(i)*tm.SymbolPeriod(), rise.T, 1e-9, "symbol %d", i)
	}
}

func TestBuildDigital_CustomRailNames(t *testing.T) {
	rail := level.RailEncoder{SelectLow: "ioff", SelectHigh: "ion", Supply: "vdd"}
	enable, data, err := pwl.BuildDigital([]int{0, 1}, rail, unitTiming(5)...)
	require.NoError(t, err)
	assert.Equal(t, "ioff", enable[2].V.Name())
	assert.Equal(t, "ion", enable[6].V.Name())
	assert.Equal(t, "vdd", data[2].V.Name())
}

func TestBuildDigital_Errors(t *testing.T) {
	rail := level.DefaultRail()

	_, _, err := pwl.BuildDigital(nil, rail, unitTiming(5)...)
	assert.ErrorIs(t, err, pwl.ErrEmptyPattern)

	_, _, err = pwl.BuildDigital([]int{0, 2}, rail, unitTiming(5)...)
	assert.ErrorIs(t, err, level.ErrCodeOutOfRange)

	_, _, err = pwl.BuildDigital([]int{0}, level.RailEncoder{}, unitTiming(5)...)
	assert.ErrorIs(t, err, level.ErrEmptyName)

	_, _, err = pwl.BuildDigital([]int{0}, rail, pwl.WithTiming(pwl.Timing{BitTime: 0}))
	assert.ErrorIs(t, err, pwl.ErrBadTiming)

	// Interval shorter than twice the setup margin folds the enable pulse back.
	_, _, err = pwl.BuildDigital([]int{0, 1}, rail, append(unitTiming(5), pwl.WithInterval(1))...)
	assert.ErrorIs(t, err, pwl.ErrNonMonotonic)

	// A delay inside the setup margin puts the enable hold before t = 0.
	_, _, err = pwl.BuildDigital([]int{0}, rail, unitTiming(1)...)
	assert.ErrorIs(t, err, pwl.ErrNonMonotonic)
}

func TestBuildDigital_NonDecreasingRandomPatterns(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rail := level.DefaultRail()
	for trial := 0; trial < 50; trial++ {
		pattern := make([]int, 1+rng.Intn(64))
		for i := range pattern {
			pattern[i] = rng.Intn(2)
		}
		td := float64(rng.Intn(40)) - 20
		if td >= 0 && td < 2 {
			td = 2
		}
		enable, data, err := pwl.BuildDigital(pattern, rail, unitTiming(td)...)
		require.NoError(t, err, "td=%g", td)
		assertNonDecreasing(t, enable)
		assertNonDecreasing(t, data)
	}
}
