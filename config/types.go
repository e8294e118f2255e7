package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pamstim/units"
)

// Mode selects the stimulus flavour.
type Mode string

const (
	// ModeDigital produces PAM-2 enable and data traces.
	ModeDigital Mode = "digital"
	// ModeAnalog produces one PAM-M voltage trace.
	ModeAnalog Mode = "analog"
)

var (
	// ErrBadMode indicates a mode other than digital or analog.
	ErrBadMode = errors.New("config: mode must be digital or analog")

	// ErrBadAlphabet indicates an alphabet below 2, or other than 2 in digital mode.
	ErrBadAlphabet = errors.New("config: invalid alphabet size")

	// ErrBadWindow indicates a window length below 1.
	ErrBadWindow = errors.New("config: window must be at least 1")

	// ErrBadMargin indicates a negative wraparound margin.
	ErrBadMargin = errors.New("config: margin must not be negative")

	// ErrBadTiming indicates a timing block the builders would reject.
	ErrBadTiming = errors.New("config: invalid timing")

	// ErrBadAmplitude indicates a non-positive analog amplitude.
	ErrBadAmplitude = errors.New("config: amplitude must be positive")

	// ErrEmptyRail indicates an empty rail name in digital mode.
	ErrEmptyRail = errors.New("config: rail names must not be empty")

	// ErrEmptyOutput indicates an empty output directory.
	ErrEmptyOutput = errors.New("config: output directory must not be empty")
)

// Value is a float64 that reads from YAML as a number or an engineering
// string ("10n", "300ps") and is written back in engineering form.
type Value float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value: %w", node.Line, units.ErrBadValue)
	}
	f, err := units.ParseValue(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*v = Value(f)

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	return units.FormatValue(float64(v)), nil
}

// String renders v in engineering form.
func (v Value) String() string { return units.FormatValue(float64(v)) }

// Timing mirrors pwl.Timing with YAML-friendly values.
type Timing struct {
	BitTime     Value `yaml:"bit_time"`
	Interval    Value `yaml:"interval"`
	Delay       Value `yaml:"delay"`
	RiseTime    Value `yaml:"rise_time"`
	SetupMargin Value `yaml:"setup_margin"`
}

// Rail holds the symbolic names used by the digital traces.
type Rail struct {
	SelectLow  string `yaml:"select_low"`
	SelectHigh string `yaml:"select_high"`
	Supply     string `yaml:"supply"`
}

// Run is one generator invocation.
type Run struct {
	Mode     Mode `yaml:"mode"`
	Alphabet int  `yaml:"alphabet"`
	Window   int  `yaml:"window"`
	// Margin is the number of symbols appended after the window-closed
	// cycle, taken from its start (see debruijn.Pattern). Defaults to
	// 2·Window when the file omits it.
	Margin    int    `yaml:"margin"`
	Timing    Timing `yaml:"timing"`
	Amplitude Value  `yaml:"amplitude"`
	Rail      Rail   `yaml:"rail"`
	Output    string `yaml:"output"`
}
