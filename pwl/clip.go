// SPDX-License-Identifier: MIT
// Package: pamstim/pwl
//
// clip.go - move a trace that starts before t = 0 onto the origin.

package pwl

import (
	"math"

	"github.com/katalvlaran/pamstim/level"
)

// Clip returns a trace that starts at t ≥ 0. The input is never modified.
//
//   - tr[0].T ≥ 0: a copy of tr is returned (Clip is idempotent).
//   - The first breakpoint at exactly t = 0 and everything after it is kept.
//   - Otherwise, for the first breakpoint (cx, cy) with cx > 0 and its
//     predecessor (px, py), the origin value py + (cy − py)·(0 − px)/(cx − px)
//     is inserted at t = 0 in front of the suffix starting at (cx, cy).
//
// Errors:
//   - ErrEmptyTrace        tr is empty.
//   - ErrDegenerateSpan    px and cx do not bound a positive-width interval.
//   - ErrNoOriginCrossing  no breakpoint at or after the origin.
//   - level.ErrSymbolicSpan the straddling segment is not numeric and not flat.
//
// Complexity: O(len(tr)) time and memory.
func Clip(tr Trace) (Trace, error) {
	if len(tr) == 0 {
		return nil, pwlErrorf(MethodClip, "%w", ErrEmptyTrace)
	}
	if tr[0].T >= 0 {
		return tr.Clone(), nil
	}

	for i := 1; i < len(tr); i++ {
		cur := tr[i]
		if cur.T == 0 {
			return tr[i:].Clone(), nil
		}
		if cur.T < 0 || math.IsNaN(cur.T) {
			continue
		}

		prev := tr[i-1]
		if math.IsNaN(prev.T) || !(cur.T > prev.T) {
			return nil, pwlErrorf(MethodClip, "(%g, %g): %w", prev.T, cur.T, ErrDegenerateSpan)
		}
		v0, err := level.Lerp(prev.V, cur.V, (0-prev.T)/(cur.T-prev.T))
		if err != nil {
			return nil, pwlErrorf(MethodClip, "%w", err)
		}

		out := make(Trace, 0, len(tr)-i+1)
		out = append(out, Breakpoint{0, v0})

		return append(out, tr[i:]...), nil
	}

	return nil, pwlErrorf(MethodClip, "last breakpoint at %g: %w", tr[len(tr)-1].T, ErrNoOriginCrossing)
}
