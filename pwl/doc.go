// Package pwl builds piecewise-linear (PWL) stimulus traces from encoded
// symbol patterns and normalizes traces that start before t = 0.
//
// A Trace is an ordered list of (time, level) breakpoints that a circuit
// simulator interpolates linearly. Two constructions are provided:
//
//   - BuildDigital: PAM-2 with delay. Produces an "enable" trace (current
//     source select, offset by a setup margin around each data edge) and a
//     "data" trace (rectangular voltage pulse per symbol, separated by an
//     inter-symbol interval).
//   - BuildAnalog: PAM-M. Produces one trace in which every symbol holds its
//     level for tbit − tr and then ramps, over tr, directly into the next
//     symbol's level (look-ahead), giving a continuous trapezoidal waveform.
//
// Clip resolves traces that begin at negative time: it cuts the trace at the
// origin and, when no breakpoint sits exactly at 0, inserts one whose level is
// linearly interpolated from the two breakpoints straddling the origin.
//
// Timing is an explicit value resolved from functional options; there is no
// package-level state.
//
// Complexity:
//
//   - BuildDigital: O(n) time, 8n+4 breakpoints for n symbols.
//   - BuildAnalog:  O(n) time, 2n+2 breakpoints.
//   - Clip:         O(len(trace)).
//   - Trace.At:     O(log len(trace)).
//
// Errors:
//
//   - ErrEmptyPattern     no symbols to build from.
//   - ErrBadTiming        resolved Timing is not physical.
//   - ErrNonMonotonic     breakpoint times decrease.
//   - ErrEmptyTrace       empty trace passed to Clip/Validate/At.
//   - ErrDegenerateSpan   zero-width interval straddling the origin.
//   - ErrNoOriginCrossing every breakpoint lies before t = 0.
//   - level.ErrSymbolicSpan interpolation across a symbolic level.
package pwl
