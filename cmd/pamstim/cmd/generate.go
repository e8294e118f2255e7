package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pamstim/config"
	"github.com/katalvlaran/pamstim/stimulus"
)

func newDigitalCmd(g *globals) *cobra.Command {
	r := config.Default()
	c := &cobra.Command{
		Use:   "digital",
		Short: "Write PAM-2 enable and data PWL files",
		Long: `Write the enable (select) and data traces for a PAM-2 de Bruijn pattern.
The enable pulse opens setup-margin before each data edge and closes
setup-margin after it.

Examples:
  pamstim digital
  pamstim digital -n 4 --bit-time 5n --interval 20n --rise-time 100p
  pamstim digital --select-low ioff --select-high ion --supply vdd -o stim`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run := r
			run.Mode = config.ModeDigital
			run.Alphabet = 2
			finishRun(cmd, &run)

			return generate(cmd, g, run)
		},
	}
	bindRunFlags(c, &r)
	c.Flags().StringVar(&r.Rail.SelectLow, "select-low", r.Rail.SelectLow, "enable level for symbol 0")
	c.Flags().StringVar(&r.Rail.SelectHigh, "select-high", r.Rail.SelectHigh, "enable level for symbol 1")
	c.Flags().StringVar(&r.Rail.Supply, "supply", r.Rail.Supply, "data high level")

	return c
}

func newAnalogCmd(g *globals) *cobra.Command {
	r := config.Default()
	r.Mode = config.ModeAnalog
	c := &cobra.Command{
		Use:   "analog",
		Short: "Write a PAM-M voltage PWL file",
		Long: `Write one voltage trace for a PAM-M de Bruijn pattern. Symbol c maps to
(c − (k−1)/2) / ((k−1)/2) × amplitude; each symbol ramps into the next
over the rise time at the end of its bit.

Examples:
  pamstim analog -k 4 -n 3
  pamstim analog -k 4 -n 2 --bit-time 1n --rise-time 100p --delay 0 --amplitude 400m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run := r
			finishRun(cmd, &run)

			return generate(cmd, g, run)
		},
	}
	bindRunFlags(c, &r)
	c.Flags().IntVarP(&r.Alphabet, "alphabet", "k", 4, "number of PAM levels")
	c.Flags().Var(valueFlag{&r.Amplitude}, "amplitude", "peak level (symbol k−1)")

	return c
}

func newRunCmd(g *globals) *cobra.Command {
	var (
		path   string
		output string
	)
	c := &cobra.Command{
		Use:   "run",
		Short: "Generate PWL files from a YAML run configuration",
		Long: `Load a YAML run configuration (see "pamstim init") and generate its files.

Examples:
  pamstim run -c run.yaml
  pamstim run -c run.yaml -o /tmp/stim`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := config.Load(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				run.Output = output
			}

			return generate(cmd, g, run)
		},
	}
	c.Flags().StringVarP(&path, "config", "c", "", "run configuration file")
	c.Flags().StringVarP(&output, "output", "o", "", "override the output directory")
	_ = c.MarkFlagRequired("config")

	return c
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <file>",
		Short: "Write the default run configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Default().Save(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])

			return nil
		},
	}
}

// generate runs the pipeline and prints one line per written file.
func generate(cmd *cobra.Command, g *globals, run config.Run) error {
	gen, err := stimulus.New(run, g.logger)
	if err != nil {
		return err
	}
	res, err := gen.Run(cmd.Context())
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, f := range res.Files {
		fmt.Fprintf(w, "%s\t%d points\tlast time = %.4g\n", f.Path, f.Points, f.LastTime)
	}

	return nil
}
