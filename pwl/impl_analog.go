// SPDX-License-Identifier: MIT
// Package: pamstim/pwl
//
// impl_analog.go - PAM-M trapezoidal trace with look-ahead transitions.
//
// Per symbol i at cursor tcur:
//
//	(tcur + tbit − tr, L(p[i]))   hold until the ramp starts
//	(tcur + tbit,      L(next))   ramp lands on the next symbol's level
//	tcur += tbit
//
// next is p[i+1], except for the last symbol which holds its own level.

package pwl

import (
	"github.com/katalvlaran/pamstim/level"
)

// BuildAnalog returns the single PAM-M trace for pattern, encoding each code
// with enc (typically a level.PAMEncoder).
//
// Initial condition: (0, L(p[0])) when Delay ≥ 0, else (Delay, L(p[0]));
// when Delay > 0 the first level is also held flat up to (Delay, L(p[0])).
//
// Validation:
//   - empty pattern → ErrEmptyPattern
//   - encoder errors are wrapped (e.g. level.ErrCodeOutOfRange)
//   - non-physical timing → ErrBadTiming
//   - RiseTime > BitTime → ErrNonMonotonic
//
// Complexity: O(n) time, 2n+2 breakpoints at most.
func BuildAnalog(pattern []int, enc level.Encoder, opts ...Option) (Trace, error) {
	if len(pattern) == 0 {
		return nil, pwlErrorf(MethodBuildAnalog, "%w", ErrEmptyPattern)
	}
	tm := Resolve(opts...)
	if err := tm.Validate(); err != nil {
		return nil, pwlErrorf(MethodBuildAnalog, "%+v: %w", tm, err)
	}
	if tm.RiseTime > tm.BitTime {
		return nil, pwlErrorf(MethodBuildAnalog, "rise time %g exceeds bit time %g: %w",
			tm.RiseTime, tm.BitTime, ErrNonMonotonic)
	}

	levels := make([]level.Level, len(pattern))
	for i, code := range pattern {
		l, err := enc.Encode(code)
		if err != nil {
			return nil, pwlErrorf(MethodBuildAnalog, "symbol %d: %w", i, err)
		}
		levels[i] = l
	}

	var (
		tbit = tm.BitTime
		tr   = tm.RiseTime
		td   = tm.Delay
		tcur = td
		last = len(levels) - 1
		out  = make(Trace, 0, 2*len(levels)+2)
	)

	if td >= 0 {
		out = append(out, Breakpoint{0, levels[0]})
	} else {
		out = append(out, Breakpoint{td, levels[0]})
	}
	if td > 0 {
		out = append(out, Breakpoint{td, levels[0]})
	}

	for i, cur := range levels {
		next := cur
		if i < last {
			next = levels[i+1]
		}
		out = append(out,
			Breakpoint{tcur + tbit - tr, cur},
			Breakpoint{tcur + tbit, next},
		)
		tcur += tbit
	}

	if err := out.Validate(); err != nil {
		return nil, pwlErrorf(MethodBuildAnalog, "%w", err)
	}

	return out, nil
}
