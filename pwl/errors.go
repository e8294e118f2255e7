// SPDX-License-Identifier: MIT
// Package: pamstim/pwl
//
// errors.go - sentinel errors for the pwl package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Implementations attach method context with %w (see pwlErrorf).
//   - Builders and Clip never panic; option constructors do on meaningless input.

package pwl

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPattern indicates a builder was given no symbols.
	ErrEmptyPattern = errors.New("pwl: empty pattern")

	// ErrEmptyTrace indicates an operation that needs at least one breakpoint.
	ErrEmptyTrace = errors.New("pwl: empty trace")

	// ErrBadTiming indicates a non-physical Timing (non-positive bit time,
	// negative rise time/interval/setup margin, or non-finite values).
	ErrBadTiming = errors.New("pwl: invalid timing")

	// ErrNonMonotonic indicates breakpoint times that decrease.
	ErrNonMonotonic = errors.New("pwl: breakpoint times must be non-decreasing")

	// ErrDegenerateSpan indicates two breakpoints straddling the origin with
	// equal (or unordered) times, so the origin value is undefined.
	ErrDegenerateSpan = errors.New("pwl: degenerate interval across the origin")

	// ErrNoOriginCrossing indicates every breakpoint lies before t = 0.
	ErrNoOriginCrossing = errors.New("pwl: trace ends before the origin")
)

// Method names used as error prefixes.
const (
	MethodBuildDigital = "BuildDigital"
	MethodBuildAnalog  = "BuildAnalog"
	MethodClip         = "Clip"
	MethodAt           = "At"
)

// pwlErrorf returns "<method>: <formatted message>" keeping %w targets intact.
func pwlErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
