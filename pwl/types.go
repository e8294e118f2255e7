package pwl

import (
	"math"
	"sort"

	"github.com/katalvlaran/pamstim/level"
)

// Breakpoint is one (time, level) vertex of a PWL trace. Time is in seconds.
type Breakpoint struct {
	T float64
	V level.Level
}

// Trace is an ordered list of breakpoints with non-decreasing time.
type Trace []Breakpoint

// Clone returns a copy of tr that shares no storage with it.
func (tr Trace) Clone() Trace {
	if tr == nil {
		return nil
	}
	out := make(Trace, len(tr))
	copy(out, tr)

	return out
}

// Times returns the breakpoint times in order.
func (tr Trace) Times() []float64 {
	out := make([]float64, len(tr))
	for i, bp := range tr {
		out[i] = bp.T
	}

	return out
}

// Duration returns last time − first time, or 0 for an empty trace.
func (tr Trace) Duration() float64 {
	if len(tr) == 0 {
		return 0
	}

	return tr[len(tr)-1].T - tr[0].T
}

// Validate checks that tr is non-empty, has finite times, and that time never
// decreases. The returned error wraps ErrEmptyTrace or ErrNonMonotonic.
func (tr Trace) Validate() error {
	if len(tr) == 0 {
		return ErrEmptyTrace
	}
	for i, bp := range tr {
		if math.IsNaN(bp.T) || math.IsInf(bp.T, 0) {
			return pwlErrorf("Validate", "breakpoint %d has time %g: %w", i, bp.T, ErrNonMonotonic)
		}
		if i > 0 && bp.T < tr[i-1].T {
			return pwlErrorf("Validate", "breakpoint %d at %g precedes %g: %w", i, bp.T, tr[i-1].T, ErrNonMonotonic)
		}
	}

	return nil
}

// At evaluates the trace at time t the way a simulator does: flat before
// the first and after the last breakpoint, linear in between. At a vertical
// edge (two breakpoints sharing t) the later breakpoint wins.
// Evaluating inside a segment whose endpoints differ and are not both numeric
// fails with level.ErrSymbolicSpan.
func (tr Trace) At(t float64) (level.Level, error) {
	if len(tr) == 0 {
		return level.Level{}, pwlErrorf(MethodAt, "%w", ErrEmptyTrace)
	}
	if t < tr[0].T {
		return tr[0].V, nil
	}
	last := len(tr) - 1
	if t >= tr[last].T {
		return tr[last].V, nil
	}

	// First breakpoint strictly after t; tr[i-1].T <= t < tr[i].T.
	i := sort.Search(len(tr), func(j int) bool { return tr[j].T > t })
	a, b := tr[i-1], tr[i]
	v, err := level.Lerp(a.V, b.V, (t-a.T)/(b.T-a.T))
	if err != nil {
		return level.Level{}, pwlErrorf(MethodAt, "t=%g: %w", t, err)
	}

	return v, nil
}
