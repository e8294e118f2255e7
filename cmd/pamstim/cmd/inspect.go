package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pamstim/pwlfile"
	"github.com/katalvlaran/pamstim/units"
)

func newInspectCmd() *cobra.Command {
	var (
		at   []string
		dump bool
	)
	c := &cobra.Command{
		Use:   "inspect <pwl-file>",
		Short: "Summarise a PWL file and evaluate it at given times",
		Long: `Parse a PWL file and print its breakpoint count, time span and end levels.
With --at, evaluate the trace the way a simulator does (linear between
breakpoints, flat outside them).

Examples:
  pamstim inspect data_pwl_2_3_1e-08_5.5e-08.txt
  pamstim inspect --at 10n --at 15.3n enable_pwl_2_3_1e-08_5.5e-08.txt
  pamstim inspect --dump analog.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := pwlfile.ReadFile(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			first, last := tr[0], tr[len(tr)-1]
			fmt.Fprintf(w, "file:     %s\n", args[0])
			fmt.Fprintf(w, "points:   %d\n", len(tr))
			fmt.Fprintf(w, "span:     %s .. %s (%s)\n",
				units.FormatValue(first.T), units.FormatValue(last.T), units.FormatValue(tr.Duration()))
			fmt.Fprintf(w, "levels:   %s .. %s\n", first.V, last.V)

			for _, s := range at {
				t, err := units.ParseValue(s)
				if err != nil {
					return err
				}
				v, err := tr.At(t)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "at %s:  %s\n", units.FormatValue(t), v)
			}
			if dump {
				return pwlfile.Write(w, tr)
			}

			return nil
		},
	}
	c.Flags().StringArrayVar(&at, "at", nil, "evaluate at this time (repeatable)")
	c.Flags().BoolVar(&dump, "dump", false, "re-emit the normalised breakpoints")

	return c
}
