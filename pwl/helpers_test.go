package pwl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamstim/level"
	"github.com/katalvlaran/pamstim/pwl"
)

// bp is a terse constructor for numeric breakpoints.
func bp(t, v float64) pwl.Breakpoint {
	return pwl.Breakpoint{T: t, V: level.Numeric(v)}
}

// sym is a terse constructor for symbolic breakpoints.
func sym(t float64, name string) pwl.Breakpoint {
	return pwl.Breakpoint{T: t, V: level.Symbol(name)}
}

// assertTrace compares times with a tolerance and levels exactly by kind.
func assertTrace(t *testing.T, want, got pwl.Trace) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].T, got[i].T, 1e-12, "time of breakpoint %d", i)
		require.Equal(t, want[i].V.Kind(), got[i].V.Kind(), "kind of breakpoint %d", i)
		if wv, ok := want[i].V.Float(); ok {
			gv, _ := got[i].V.Float()
			assert.InDelta(t, wv, gv, 1e-12, "value of breakpoint %d", i)
		} else {
			assert.Equal(t, want[i].V.Name(), got[i].V.Name(), "symbol of breakpoint %d", i)
		}
	}
}

// assertNonDecreasing checks the time invariant of a trace.
func assertNonDecreasing(t *testing.T, tr pwl.Trace) {
	t.Helper()
	for i := 1; i < len(tr); i++ {
		assert.GreaterOrEqual(t, tr[i].T, tr[i-1].T, "breakpoint %d", i)
	}
}
