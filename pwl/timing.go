// SPDX-License-Identifier: MIT
// Package: pamstim/pwl
//
// timing.go - the explicit timing configuration consumed by the builders.
//
// Design:
//   - Timing is the single source of truth for every timing knob; builders
//     never read package-level values.
//   - Defaults are deterministic and documented (no globals).
//   - Resolve applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   - BitTime     = 10 ns
//   - Interval    = 55 ns
//   - Delay       = 0
//   - RiseTime    = 10 ns
//   - SetupMargin = 2 ns

package pwl

import "math"

// Timing holds all timing parameters, in seconds.
type Timing struct {
	// BitTime is the flat-top duration of one symbol (tbit, > 0).
	BitTime float64
	// Interval is the idle gap between digital symbols (tinterval, ≥ 0).
	Interval float64
	// Delay is the time of the first symbol (td); may be negative.
	Delay float64
	// RiseTime is the duration of every level transition (tr, ≥ 0).
	RiseTime float64
	// SetupMargin offsets the digital enable pulse around the data edges (td_s, ≥ 0).
	SetupMargin float64
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultBitTime     = 10e-9
	DefaultInterval    = 55e-9
	DefaultDelay       = 0.0
	DefaultRiseTime    = 10e-9
	DefaultSetupMargin = 2e-9
)

// DefaultTiming returns the documented defaults.
func DefaultTiming() Timing {
	return Timing{
		BitTime:     DefaultBitTime,
		Interval:    DefaultInterval,
		Delay:       DefaultDelay,
		RiseTime:    DefaultRiseTime,
		SetupMargin: DefaultSetupMargin,
	}
}

// Resolve starts from DefaultTiming and applies opts in order.
// Complexity: O(len(opts)).
func Resolve(opts ...Option) Timing {
	tm := DefaultTiming()
	for _, opt := range opts {
		opt(&tm)
	}

	return tm
}

// Validate reports ErrBadTiming when a field is non-finite or out of range.
func (tm Timing) Validate() error {
	for _, v := range []float64{tm.BitTime, tm.Interval, tm.Delay, tm.RiseTime, tm.SetupMargin} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadTiming
		}
	}
	if tm.BitTime <= 0 || tm.Interval < 0 || tm.RiseTime < 0 || tm.SetupMargin < 0 {
		return ErrBadTiming
	}

	return nil
}

// SymbolPeriod is the digital cursor advance per symbol: 2·tr + tbit + tinterval.
func (tm Timing) SymbolPeriod() float64 {
	return 2*tm.RiseTime + tm.BitTime + tm.Interval
}
