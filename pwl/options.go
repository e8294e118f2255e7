// SPDX-License-Identifier: MIT
// Package: pamstim/pwl
//
// options.go - functional options for the builders.
//
// Contract:
//   - Options are functional (type Option func(*Timing)).
//   - Option constructors validate and panic on meaningless inputs; the
//     builders themselves return errors and never panic.
//   - WithTiming installs a whole Timing as-is; it is validated by the builder.

package pwl

import (
	"fmt"
	"math"
)

// Option customizes the Timing used by a builder.
type Option func(*Timing)

// WithBitTime sets tbit. Panics unless tbit is finite and > 0.
func WithBitTime(tbit float64) Option {
	if !finite(tbit) || tbit <= 0 {
		panic(fmt.Sprintf("pwl: WithBitTime(%g)", tbit))
	}
	return func(tm *Timing) {
		tm.BitTime = tbit
	}
}

// WithInterval sets the inter-symbol gap. Panics unless finite and ≥ 0.
func WithInterval(tinterval float64) Option {
	if !finite(tinterval) || tinterval < 0 {
		panic(fmt.Sprintf("pwl: WithInterval(%g)", tinterval))
	}
	return func(tm *Timing) {
		tm.Interval = tinterval
	}
}

// WithDelay sets the first-symbol time. Negative delays are allowed and
// produce traces that start before t = 0 (see Clip). Panics on NaN/Inf.
func WithDelay(td float64) Option {
	if !finite(td) {
		panic(fmt.Sprintf("pwl: WithDelay(%g)", td))
	}
	return func(tm *Timing) {
		tm.Delay = td
	}
}

// WithRiseTime sets the transition time. Panics unless finite and ≥ 0.
func WithRiseTime(tr float64) Option {
	if !finite(tr) || tr < 0 {
		panic(fmt.Sprintf("pwl: WithRiseTime(%g)", tr))
	}
	return func(tm *Timing) {
		tm.RiseTime = tr
	}
}

// WithSetupMargin sets the digital enable offset. Panics unless finite and ≥ 0.
func WithSetupMargin(tds float64) Option {
	if !finite(tds) || tds < 0 {
		panic(fmt.Sprintf("pwl: WithSetupMargin(%g)", tds))
	}
	return func(tm *Timing) {
		tm.SetupMargin = tds
	}
}

// WithTiming replaces every field with t.
func WithTiming(t Timing) Option {
	return func(tm *Timing) {
		*tm = t
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
