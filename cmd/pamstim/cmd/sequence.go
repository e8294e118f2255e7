package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pamstim/debruijn"
)

func newSequenceCmd(g *globals) *cobra.Command {
	var (
		k, n, margin  int
		cycle, census bool
	)
	c := &cobra.Command{
		Use:   "sequence",
		Short: "Print the de Bruijn pattern for B(k, n)",
		Long: `Print the pattern the digital and analog commands drive: the
lexicographically smallest de Bruijn cycle over k symbols with window n,
closed with its first n symbols, then --margin more symbols (default
2·window) from the start of that closed sequence. --cycle prints the bare
cycle instead.

Examples:
  pamstim sequence -k 2 -n 3
  pamstim sequence -k 2 -n 3 --margin 0
  pamstim sequence -k 4 -n 2 --cycle --census`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seq, err := debruijn.Generate(k, n)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("margin") {
				margin = 2 * n
			}
			g.logger.Debug("generated", "k", k, "n", n, "length", len(seq))

			out := seq
			if !cycle {
				out = debruijn.Extend(debruijn.Extend(seq, n), margin)
			}
			syms := make([]string, len(out))
			for i, s := range out {
				syms[i] = fmt.Sprint(s)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, strings.Join(syms, " "))

			if census {
				counts := debruijn.CountWindows(seq, n)
				keys := make([]string, 0, len(counts))
				for key := range counts {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					fmt.Fprintf(w, "%s\t%d\n", key, counts[key])
				}
				fmt.Fprintf(w, "windows: %d, complete: %t\n", len(counts), debruijn.IsDeBruijn(seq, k, n))
			}

			return nil
		},
	}
	c.Flags().IntVarP(&k, "alphabet", "k", 2, "alphabet size")
	c.Flags().IntVarP(&n, "window", "n", 3, "window length")
	c.Flags().IntVar(&margin, "margin", 0, "symbols appended after the closed cycle (default 2·window)")
	c.Flags().BoolVar(&cycle, "cycle", false, "print only the bare k^n cycle")
	c.Flags().BoolVar(&census, "census", false, "print the cyclic window census")

	return c
}
