// SPDX-License-Identifier: MIT
// Package: pamstim/level
//
// level.go - the Level tagged variant and its PWL token rendering.
//
// Contract:
//   - Zero value is Numeric(0).
//   - Symbolic levels carry a non-empty name; Symbol panics on "" (constructor
//     validation, same policy as builder options).
//   - String renders the PWL value token: %.6g for numbers, 'name' for symbols.

package level

import (
	"errors"
	"fmt"
)

// Kind tags the variant held by a Level.
type Kind uint8

const (
	// KindNumeric marks a plain float64 level.
	KindNumeric Kind = iota
	// KindSymbolic marks a named reference to an external circuit constant.
	KindSymbolic
)

// String returns "numeric" or "symbolic".
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindSymbolic:
		return "symbolic"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ErrSymbolicSpan is returned when a value between two levels is requested
// and at least one endpoint is a symbol different from the other.
var ErrSymbolicSpan = errors.New("level: cannot interpolate across a symbolic level")

// Level is the encoded electrical value of a symbol.
type Level struct {
	kind  Kind
	value float64
	name  string
}

// Numeric returns a numeric level.
func Numeric(v float64) Level {
	return Level{kind: KindNumeric, value: v}
}

// Symbol returns a symbolic level referring to name. Panics if name is empty.
func Symbol(name string) Level {
	if name == "" {
		panic("level: Symbol(\"\")")
	}

	return Level{kind: KindSymbolic, name: name}
}

// Kind reports which variant l holds.
func (l Level) Kind() Kind { return l.kind }

// IsNumeric reports whether l is numeric.
func (l Level) IsNumeric() bool { return l.kind == KindNumeric }

// Float returns the numeric value and true, or 0 and false for a symbol.
func (l Level) Float() (float64, bool) {
	if l.kind != KindNumeric {
		return 0, false
	}

	return l.value, true
}

// Name returns the symbol name, or "" for a numeric level.
func (l Level) Name() string { return l.name }

// Equal reports whether l and o hold the same variant and payload.
func (l Level) Equal(o Level) bool {
	if l.kind != o.kind {
		return false
	}
	if l.kind == KindSymbolic {
		return l.name == o.name
	}

	return l.value == o.value
}

// String renders the PWL value token.
func (l Level) String() string {
	if l.kind == KindSymbolic {
		return "'" + l.name + "'"
	}

	return fmt.Sprintf("%.6g", l.value)
}

// Lerp returns a + (b − a)·frac for numeric endpoints. Equal endpoints of any
// kind are returned unchanged, so a flat symbolic segment can still be cut.
// Any other combination fails with ErrSymbolicSpan.
func Lerp(a, b Level, frac float64) (Level, error) {
	if a.Equal(b) {
		return a, nil
	}
	av, aok := a.Float()
	bv, bok := b.Float()
	if !aok || !bok {
		return Level{}, fmt.Errorf("Lerp(%s, %s): %w", a, b, ErrSymbolicSpan)
	}

	return Numeric(av + (bv-av)*frac), nil
}
