// Package pamstim generates piecewise-linear (PWL) stimulus files for
// circuit-level signal-integrity simulation of PAM links.
//
// A run drives a de Bruijn test pattern, which exercises every length-n
// symbol window exactly once, through one of two trace builders and writes
// the result as plain "time value" text that SPICE-class simulators read as
// a PWL source.
//
// Everything is organized under small single-purpose packages:
//
//	debruijn/    B(k, n) generation (iterative FKM), wraparound, window census
//	level/       numeric/symbolic levels, rail and linear PAM-M encoders
//	pwl/         Trace, digital and analog builders, origin clipping, evaluation
//	pwlfile/     PWL text writer, participle-based reader, output file naming
//	units/       SPICE engineering notation ("10n", "300ps", "1meg")
//	config/      YAML run configuration
//	stimulus/    Generate → Extend → Build → Clip → Write, with slog logging
//	cmd/pamstim  cobra CLI: sequence, digital, analog, run, init, inspect
//
// Timing sketch of one digital symbol (enable wraps data by tds each side):
//
//	enable  ___/"""""""""""""""\_______   select level
//	data    _____/"""""""""""\_________   supply rail
//	              |<- tbit ->|
//
// Library use in a few lines:
//
//	seq, err := debruijn.Pattern(2, 3, 6)
//	enable, data, err := pwl.BuildDigital(seq, level.DefaultRail(), pwl.WithDelay(5e-9))
//	data, err = pwl.Clip(data)
//	err = pwlfile.WriteFile("data.txt", data)
//
//	go install github.com/katalvlaran/pamstim/cmd/pamstim@latest
package pamstim
