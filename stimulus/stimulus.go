package stimulus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/katalvlaran/pamstim/config"
	"github.com/katalvlaran/pamstim/debruijn"
	"github.com/katalvlaran/pamstim/pwl"
	"github.com/katalvlaran/pamstim/pwlfile"
)

// Trace kinds, used as file name prefixes.
const (
	// KindEnable is the digital select/enable line.
	KindEnable = "enable"
	// KindData is the data line (digital rectangle or analog PAM-M).
	KindData = "data"
)

// ErrNilGenerator is returned by methods called on a nil *Generator.
var ErrNilGenerator = errors.New("stimulus: nil generator")

// Output is one clipped trace ready to be written.
type Output struct {
	Kind  string
	Trace pwl.Trace
}

// File describes one written trace.
type File struct {
	Kind     string
	Path     string
	Points   int
	LastTime float64
}

// Result summarises a completed run.
type Result struct {
	Sequence debruijn.Sequence
	Files    []File
}

// Generator turns a validated config.Run into PWL files.
type Generator struct {
	run    config.Run
	logger *slog.Logger
}

// New validates run and returns a Generator. A nil logger means
// slog.Default().
func New(run config.Run, logger *slog.Logger) (*Generator, error) {
	if err := run.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{run: run, logger: logger}, nil
}

// Config returns the run the generator was built with.
func (g *Generator) Config() config.Run { return g.run }

// Sequence returns debruijn.Pattern(Alphabet, Window, Margin): the cycle
// closed with Window symbols, then Margin more from the closed sequence.
func (g *Generator) Sequence() (debruijn.Sequence, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	out, err := debruijn.Pattern(g.run.Alphabet, g.run.Window, g.run.Margin)
	if err != nil {
		return nil, err
	}
	g.logger.Info("sequence generated",
		slog.Int("alphabet", g.run.Alphabet),
		slog.Int("window", g.run.Window),
		slog.Int("margin", g.run.Margin),
		slog.Int("length", len(out)),
	)
	g.logger.Debug("sequence symbols", slog.Any("symbols", []int(out)))

	return out, nil
}

// Build produces the clipped traces for pattern according to the run mode.
func (g *Generator) Build(pattern []int) ([]Output, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	opts := g.run.Options()

	var raw []Output
	switch g.run.Mode {
	case config.ModeDigital:
		enable, data, err := pwl.BuildDigital(pattern, g.run.RailEncoder(), opts...)
		if err != nil {
			return nil, err
		}
		raw = []Output{{KindEnable, enable}, {KindData, data}}
	case config.ModeAnalog:
		enc, err := g.run.PAMEncoder()
		if err != nil {
			return nil, err
		}
		data, err := pwl.BuildAnalog(pattern, enc, opts...)
		if err != nil {
			return nil, err
		}
		raw = []Output{{KindData, data}}
	default:
		return nil, fmt.Errorf("mode %q: %w", g.run.Mode, config.ErrBadMode)
	}

	out := make([]Output, 0, len(raw))
	for _, o := range raw {
		clipped, err := pwl.Clip(o.Trace)
		if err != nil {
			return nil, fmt.Errorf("%s trace: %w", o.Kind, err)
		}
		out = append(out, Output{Kind: o.Kind, Trace: clipped})
	}

	return out, nil
}

// Path returns the output file path for kind.
func (g *Generator) Path(kind string) (string, error) {
	name, err := pwlfile.FileName(kind, g.run.Alphabet, g.run.Window,
		float64(g.run.Timing.BitTime), float64(g.run.Timing.Interval))
	if err != nil {
		return "", err
	}

	return filepath.Join(g.run.Output, name), nil
}

// Run generates the sequence, builds and clips the traces and writes one
// file per trace.
func (g *Generator) Run(ctx context.Context) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGenerator
	}
	seq, err := g.Sequence()
	if err != nil {
		return Result{}, err
	}
	outs, err := g.Build(seq)
	if err != nil {
		return Result{}, err
	}

	res := Result{Sequence: seq, Files: make([]File, 0, len(outs))}
	for _, o := range outs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		path, err := g.Path(o.Kind)
		if err != nil {
			return res, err
		}
		if err := pwlfile.WriteFile(path, o.Trace); err != nil {
			return res, err
		}
		f := File{
			Kind:     o.Kind,
			Path:     path,
			Points:   len(o.Trace),
			LastTime: o.Trace[len(o.Trace)-1].T,
		}
		g.logger.Info("trace written",
			slog.String("kind", f.Kind),
			slog.String("path", f.Path),
			slog.Int("points", f.Points),
			slog.String("last_time", fmt.Sprintf("%.4g", f.LastTime)),
		)
		res.Files = append(res.Files, f)
	}

	return res, nil
}
