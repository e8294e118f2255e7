package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pamstim/level"
	"github.com/katalvlaran/pamstim/pwl"
)

// Default generator parameters.
const (
	DefaultAlphabet    = 2
	DefaultWindow      = 3
	DefaultBitTime     = 10e-9
	DefaultInterval    = 55e-9
	DefaultDelay       = 5e-9
	DefaultRiseTime    = 300e-12
	DefaultSetupMargin = pwl.DefaultSetupMargin
	DefaultAmplitude   = 1.0
	DefaultOutput      = "."
)

// Default returns the reference digital run: B(2,3) with 2·n wraparound
// symbols, 10 ns bits, 55 ns gaps, 5 ns delay and 300 ps edges.
func Default() Run {
	return Run{
		Mode:     ModeDigital,
		Alphabet: DefaultAlphabet,
		Window:   DefaultWindow,
		Margin:   2 * DefaultWindow,
		Timing: Timing{
			BitTime:     DefaultBitTime,
			Interval:    DefaultInterval,
			Delay:       DefaultDelay,
			RiseTime:    DefaultRiseTime,
			SetupMargin: DefaultSetupMargin,
		},
		Amplitude: DefaultAmplitude,
		Rail: Rail{
			SelectLow:  level.DefaultSelectLow,
			SelectHigh: level.DefaultSelectHigh,
			Supply:     level.DefaultSupply,
		},
		Output: DefaultOutput,
	}
}

// Load reads the YAML file at path on top of Default and validates it.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return Run{}, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// Parse decodes YAML on top of Default and validates the result. An empty
// document yields Default. When margin is absent it is 2·window, so a file
// that only sets the window matches the CLI default.
func Parse(data []byte) (Run, error) {
	r := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return Run{}, fmt.Errorf("failed to parse the config: %w", err)
	}
	var keys struct {
		Margin *int `yaml:"margin"`
	}
	if err := yaml.Unmarshal(data, &keys); err == nil && keys.Margin == nil {
		r.Margin = 2 * r.Window
	}
	if err := r.Validate(); err != nil {
		return Run{}, err
	}

	return r, nil
}

// Save writes r as YAML to path, creating parent directories.
func (r Run) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal the config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks r field by field and returns the first violation.
func (r Run) Validate() error {
	switch r.Mode {
	case ModeDigital:
		if r.Alphabet != 2 {
			return fmt.Errorf("alphabet %d in digital mode: %w", r.Alphabet, ErrBadAlphabet)
		}
		if err := r.RailEncoder().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrEmptyRail, err)
		}
	case ModeAnalog:
		if r.Alphabet < level.MinLevels {
			return fmt.Errorf("alphabet %d: %w", r.Alphabet, ErrBadAlphabet)
		}
		if !(r.Amplitude > 0) {
			return fmt.Errorf("amplitude %s: %w", r.Amplitude, ErrBadAmplitude)
		}
	default:
		return fmt.Errorf("mode %q: %w", r.Mode, ErrBadMode)
	}
	if r.Window < 1 {
		return fmt.Errorf("window %d: %w", r.Window, ErrBadWindow)
	}
	if r.Margin < 0 {
		return fmt.Errorf("margin %d: %w", r.Margin, ErrBadMargin)
	}
	if err := r.PWLTiming().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadTiming, err)
	}
	if r.Output == "" {
		return ErrEmptyOutput
	}

	return nil
}

// PWLTiming converts the timing block for the builders.
func (r Run) PWLTiming() pwl.Timing {
	return pwl.Timing{
		BitTime:     float64(r.Timing.BitTime),
		Interval:    float64(r.Timing.Interval),
		Delay:       float64(r.Timing.Delay),
		RiseTime:    float64(r.Timing.RiseTime),
		SetupMargin: float64(r.Timing.SetupMargin),
	}
}

// Options returns the builder options equivalent to r.
func (r Run) Options() []pwl.Option {
	return []pwl.Option{pwl.WithTiming(r.PWLTiming())}
}

// RailEncoder returns the digital encoder named by r.Rail.
func (r Run) RailEncoder() level.RailEncoder {
	return level.RailEncoder{
		SelectLow:  r.Rail.SelectLow,
		SelectHigh: r.Rail.SelectHigh,
		Supply:     r.Rail.Supply,
	}
}

// PAMEncoder returns the analog encoder for r.Alphabet and r.Amplitude.
func (r Run) PAMEncoder() (level.PAMEncoder, error) {
	return level.NewPAM(r.Alphabet, float64(r.Amplitude))
}
