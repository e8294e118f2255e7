// SPDX-License-Identifier: MIT
// Package: pamstim/level
//
// encode.go - symbol code to Level encoders (rail and linear PAM-M).
//
// Error policy:
//   - Sentinel errors only; callers branch with errors.Is.
//   - Encoders are stateless values and safe to share.

package level

import (
	"errors"
	"fmt"
)

// Default rail names used by the digital stimulus.
const (
	DefaultSelectLow  = "ileak" // select line while the symbol is 0
	DefaultSelectHigh = "ihold" // select line while the symbol is non-zero
	DefaultSupply     = "xvcc"  // data line high level
)

// MinLevels is the smallest PAM alphabet.
const MinLevels = 2

var (
	// ErrCodeOutOfRange indicates a symbol code outside the encoder alphabet.
	ErrCodeOutOfRange = errors.New("level: symbol code out of range")

	// ErrTooFewLevels indicates a PAM alphabet with fewer than MinLevels levels.
	ErrTooFewLevels = errors.New("level: PAM alphabet needs at least 2 levels")

	// ErrBadAmplitude indicates a non-positive or non-finite PAM amplitude.
	ErrBadAmplitude = errors.New("level: amplitude must be positive")

	// ErrEmptyName indicates a rail encoder with an empty symbol name.
	ErrEmptyName = errors.New("level: rail name must not be empty")
)

// Encoder maps a symbol code to a Level.
type Encoder interface {
	Encode(code int) (Level, error)
}

// RailEncoder is the binary rail encoding used by the digital stimulus: the
// select line toggles between two current-source names and the data line
// between 0 and the supply rail.
type RailEncoder struct {
	SelectLow  string
	SelectHigh string
	Supply     string
}

// DefaultRail returns a RailEncoder with the ileak/ihold/xvcc names.
func DefaultRail() RailEncoder {
	return RailEncoder{
		SelectLow:  DefaultSelectLow,
		SelectHigh: DefaultSelectHigh,
		Supply:     DefaultSupply,
	}
}

// Validate reports ErrEmptyName if any rail name is empty.
func (r RailEncoder) Validate() error {
	if r.SelectLow == "" || r.SelectHigh == "" || r.Supply == "" {
		return ErrEmptyName
	}

	return nil
}

// Select returns SelectLow for code 0 and SelectHigh otherwise.
func (r RailEncoder) Select(code int) Level {
	if code == 0 {
		return Symbol(r.SelectLow)
	}

	return Symbol(r.SelectHigh)
}

// Data returns Numeric(0) for bit 0 and the Supply rail otherwise.
func (r RailEncoder) Data(bit int) Level {
	if bit == 0 {
		return Numeric(0)
	}

	return Symbol(r.Supply)
}

// Baseline is the rest level of both digital lines.
func (r RailEncoder) Baseline() Level {
	return Numeric(0)
}

// Encode is the strict PAM-2 form of Select. Select maps every non-zero code
// to SelectHigh; Encode deliberately accepts only 0 and 1 so that a PAM-M
// pattern fed to the digital builder fails instead of collapsing to two levels.
func (r RailEncoder) Encode(code int) (Level, error) {
	if code < 0 || code > 1 {
		return Level{}, fmt.Errorf("RailEncoder.Encode(%d): %w", code, ErrCodeOutOfRange)
	}

	return r.Select(code), nil
}

// PAMEncoder is the linear PAM-M encoding: levels equally spaced and
// symmetric about zero, spanning [−Amplitude, +Amplitude].
type PAMEncoder struct {
	levels    int
	amplitude float64
}

// NewPAM returns an encoder for a k-level alphabet with peak amplitude amp.
func NewPAM(k int, amp float64) (PAMEncoder, error) {
	if k < MinLevels {
		return PAMEncoder{}, fmt.Errorf("NewPAM: k=%d: %w", k, ErrTooFewLevels)
	}
	if !(amp > 0) || amp > maxAmplitude {
		return PAMEncoder{}, fmt.Errorf("NewPAM: amplitude=%g: %w", amp, ErrBadAmplitude)
	}

	return PAMEncoder{levels: k, amplitude: amp}, nil
}

// maxAmplitude rejects +Inf while allowing any physical value.
const maxAmplitude = 1e300

// Levels returns the alphabet size.
func (e PAMEncoder) Levels() int { return e.levels }

// Amplitude returns the peak amplitude.
func (e PAMEncoder) Amplitude() float64 { return e.amplitude }

// Voltage returns (code − h) / h × amplitude with h = (k−1)/2. Code 0 maps to
// exactly −amplitude and code k−1 to exactly +amplitude. The code is not
// range-checked; use Encode for validated input.
func (e PAMEncoder) Voltage(code int) float64 {
	half := float64(e.levels-1) / 2

	return (float64(code) - half) / half * e.amplitude
}

// Encode validates code against the alphabet and returns its numeric level.
func (e PAMEncoder) Encode(code int) (Level, error) {
	if code < 0 || code >= e.levels {
		return Level{}, fmt.Errorf("PAMEncoder.Encode(%d) with %d levels: %w", code, e.levels, ErrCodeOutOfRange)
	}

	return Numeric(e.Voltage(code)), nil
}
