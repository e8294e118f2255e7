package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pamstim/config"
	"github.com/katalvlaran/pamstim/units"
)

// valueFlag adapts a config.Value to pflag.Value so flags accept
// engineering notation ("10n", "300p").
type valueFlag struct{ v *config.Value }

func (f valueFlag) String() string {
	if f.v == nil {
		return "0"
	}

	return f.v.String()
}

func (f valueFlag) Set(s string) error {
	x, err := units.ParseValue(s)
	if err != nil {
		return err
	}
	*f.v = config.Value(x)

	return nil
}

func (f valueFlag) Type() string { return "value" }

// bindRunFlags registers the flags shared by the digital and analog commands.
func bindRunFlags(c *cobra.Command, r *config.Run) {
	fs := c.Flags()
	fs.IntVarP(&r.Window, "window", "n", r.Window, "de Bruijn window length")
	fs.IntVar(&r.Margin, "margin", r.Margin, "extra wraparound symbols (default 2·window)")
	fs.Var(valueFlag{&r.Timing.BitTime}, "bit-time", "symbol flat-top time")
	fs.Var(valueFlag{&r.Timing.Interval}, "interval", "idle gap between digital symbols")
	fs.Var(valueFlag{&r.Timing.Delay}, "delay", "time of the first symbol (may be negative)")
	fs.Var(valueFlag{&r.Timing.RiseTime}, "rise-time", "transition time")
	fs.Var(valueFlag{&r.Timing.SetupMargin}, "setup-margin", "enable offset around data edges")
	fs.StringVarP(&r.Output, "output", "o", r.Output, "output directory")
}

// finishRun applies the flag-derived defaults that depend on other flags.
func finishRun(c *cobra.Command, r *config.Run) {
	if !c.Flags().Changed("margin") {
		r.Margin = 2 * r.Window
	}
}
