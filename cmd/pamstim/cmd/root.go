package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// globals holds the persistent flags and the logger derived from them.
type globals struct {
	verbose bool
	logger  *slog.Logger
}

// NewRootCmd builds the pamstim command tree.
func NewRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "pamstim",
		Short: "PWL stimulus generator for PAM links",
		Long: `Generate piecewise-linear stimulus files driven by a de Bruijn pattern,
for circuit-level signal-integrity simulation of PAM links.

Examples:
  pamstim sequence -k 4 -n 2                          # Print B(4,2)
  pamstim digital --delay 5n --rise-time 300p         # PAM-2 enable + data files
  pamstim analog -k 4 -n 3 --amplitude 400m -o out    # PAM-4 voltage file
  pamstim init run.yaml && pamstim run -c run.yaml    # Config-driven run
  pamstim inspect data_pwl_2_3_1e-08_5.5e-08.txt      # Summarise a PWL file`,
		Version:       "0.3.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			lvl := slog.LevelInfo
			if g.verbose {
				lvl = slog.LevelDebug
			}
			g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
		},
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newSequenceCmd(g),
		newDigitalCmd(g),
		newAnalogCmd(g),
		newRunCmd(g),
		newInitCmd(),
		newInspectCmd(),
	)

	return root
}

// Execute runs the root command until completion or interrupt.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
