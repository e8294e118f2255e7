// SPDX-License-Identifier: MIT
// Package: pamstim/pwl
//
// impl_digital.go - PAM-2 with delay: enable + data traces.
//
// Per symbol at cursor tcur (tbit, tinterval, tr, tds from Timing):
//
//	enable: (tcur−tds+tr, sel) (tcur+tds+tr+tbit, sel)
//	        (tcur+tds+2tr+tbit, base) (tcur−tds+2tr+tbit+tinterval, base)
//	data:   (tcur+tr, hi) (tcur+tr+tbit, hi)
//	        (tcur+2tr+tbit, lo) (tcur+2tr+tbit+tinterval, lo)
//	tcur += 2tr + tbit + tinterval
//
// The enable pulse opens tds before the data edge and closes tds after it,
// modelling setup/hold around the data transition.

package pwl

import (
	"github.com/katalvlaran/pamstim/level"
)

// BuildDigital returns the enable and data traces for a PAM-2 pattern.
//
// Initial condition (cursor tcur = Delay):
//   - tcur ≥ 0: both traces start at (0, baseline).
//   - tcur < 0: enable starts at (tcur − tds, baseline), data at (tcur, baseline);
//     the traces begin before the origin and are meant to go through Clip.
//   - tcur > 0: baseline is additionally held to (tcur − tds) / (tcur).
//
// Validation:
//   - empty pattern → ErrEmptyPattern
//   - invalid rail names → level.ErrEmptyName
//   - codes other than 0/1 → level.ErrCodeOutOfRange
//   - non-physical timing → ErrBadTiming
//   - timing that yields decreasing times (e.g. tinterval < 2·tds, or
//     0 < Delay < tds) → ErrNonMonotonic
//
// Complexity: O(n) time, two traces of 4n+2 breakpoints at most.
func BuildDigital(pattern []int, rail level.RailEncoder, opts ...Option) (enable, data Trace, err error) {
	if len(pattern) == 0 {
		return nil, nil, pwlErrorf(MethodBuildDigital, "%w", ErrEmptyPattern)
	}
	if err = rail.Validate(); err != nil {
		return nil, nil, pwlErrorf(MethodBuildDigital, "%w", err)
	}
	tm := Resolve(opts...)
	if err = tm.Validate(); err != nil {
		return nil, nil, pwlErrorf(MethodBuildDigital, "%+v: %w", tm, err)
	}

	// Encode up front so a bad code fails before any trace is allocated.
	sel := make([]level.Level, len(pattern))
	for i, code := range pattern {
		if sel[i], err = rail.Encode(code); err != nil {
			return nil, nil, pwlErrorf(MethodBuildDigital, "symbol %d: %w", i, err)
		}
	}

	var (
		base = rail.Baseline()
		hi   = rail.Data(1)
		lo   = rail.Data(0)
		tbit = tm.BitTime
		tint = tm.Interval
		tr   = tm.RiseTime
		tds  = tm.SetupMargin
		tcur = tm.Delay
	)

	enable = make(Trace, 0, 4*len(pattern)+2)
	data = make(Trace, 0, 4*len(pattern)+2)

	if tcur >= 0 {
		enable = append(enable, Breakpoint{0, base})
		data = append(data, Breakpoint{0, base})
	} else {
		enable = append(enable, Breakpoint{tcur - tds, base})
		data = append(data, Breakpoint{tcur, base})
	}
	if tcur > 0 {
		enable = append(enable, Breakpoint{tcur - tds, base})
		data = append(data, Breakpoint{tcur, base})
	}

	for _, s := range sel {
		enable = append(enable,
			Breakpoint{tcur - tds + tr, s},
			Breakpoint{tcur + tds + tr + tbit, s},
			Breakpoint{tcur + tds + 2*tr + tbit, base},
			Breakpoint{tcur - tds + 2*tr + tbit + tint, base},
		)
		data = append(data,
			Breakpoint{tcur + tr, hi},
			Breakpoint{tcur + tr + tbit, hi},
			Breakpoint{tcur + 2*tr + tbit, lo},
			Breakpoint{tcur + 2*tr + tbit + tint, lo},
		)
		tcur += tm.SymbolPeriod()
	}

	if err = enable.Validate(); err != nil {
		return nil, nil, pwlErrorf(MethodBuildDigital, "enable trace: %w", err)
	}
	if err = data.Validate(); err != nil {
		return nil, nil, pwlErrorf(MethodBuildDigital, "data trace: %w", err)
	}

	return enable, data, nil
}
