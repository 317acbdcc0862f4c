package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alphaquant/academy/internal/market"
	"github.com/alphaquant/academy/internal/simulation"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the AI analyst backtest without the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		cfg, err := e.cfg.SimulationSettings()
		if err != nil {
			return err
		}
		if tick, _ := cmd.Flags().GetDuration("tick"); tick > 0 {
			cfg.Tick = tick
		}
		if cmd.Flags().Changed("settle") {
			cfg.SettleDelay, _ = cmd.Flags().GetDuration("settle")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		runner := simulation.NewRunner(cfg,
			simulation.WithRecorder(e.store.SimulationRepo()),
			simulation.WithLogger(e.logger))
		defer runner.Close()

		fmt.Printf("$ python enhanced_engine.py --backtest %s\n", simulation.Ticker)
		if !runner.Start(ctx) {
			return fmt.Errorf("simulation could not start")
		}
		fmt.Printf("🚀 STARTING SIMULATION: %s (%d iterations)\n", simulation.Ticker, simulation.Iterations)
		fmt.Printf("Computing %d Monte Carlo scenarios...\n", simulation.Iterations)

		final, err := follow(ctx, runner, cmd.OutOrStdout())
		e.logger.Info("headless simulation finished",
			zap.Int("progress", final.Progress),
			zap.Bool("completed", final.Results != nil))
		return err
	},
}

// follow prints runner updates until the run goes idle. A run that ends
// without results was cut short by ctx and is reported as an error.
func follow(ctx context.Context, runner *simulation.Runner, w io.Writer) (simulation.State, error) {
	var (
		g     errgroup.Group
		final simulation.State
	)
	g.Go(func() error {
		runner.Wait()
		return nil
	})
	g.Go(func() error {
		p := printer{w: w}
		for st := range runner.Updates() {
			p.print(st)
			if st.Phase != simulation.PhaseIdle {
				continue
			}
			final = st
			if st.Results == nil {
				return fmt.Errorf("simulation interrupted at %d%%: %w", st.Progress, context.Cause(ctx))
			}
			return nil
		}
		return nil
	})
	err := g.Wait()
	return final, err
}

// printer renders runner states as a terminal log, printing each
// milestone once.
type printer struct {
	w                      io.Writer
	models, midpoint, done bool
}

func (p *printer) print(st simulation.State) {
	if !p.models && st.ModelsReady() {
		p.models = true
		fmt.Fprint(p.w, "\r\033[K")
		fmt.Fprintln(p.w, "INITIALIZING MODELS: COMPLETE")
	}
	if mid, ok := st.Midpoint(); ok && !p.midpoint {
		p.midpoint = true
		fmt.Fprint(p.w, "\r\033[K")
		fmt.Fprintf(p.w, "Mid-point Report  Curr. Profit: +$%s  Win Rate: %.1f%%\n", market.FormatPrice(mid.Profit), mid.WinRate)
	}

	fmt.Fprintf(p.w, "\r\033[K%s %3d%%", bar(st.Progress, 40), st.Progress)

	if st.Results != nil && !p.done {
		p.done = true
		r := st.Results
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, "✓ SIMULATION COMPLETE")
		fmt.Fprintf(p.w, "Total P&L: +$%s  Sharpe: +%.3f  Win Rate: %.1f%%  Max DD: %.1f%%\n",
			market.FormatPrice(r.TotalPnL), r.Sharpe, r.WinRate, r.MaxDrawdown)
		fmt.Fprintln(p.w, "Strategy Status: READY FOR PROPOSALS")
	}
	if st.Phase == simulation.PhaseIdle {
		fmt.Fprintln(p.w)
	}
}

func bar(progress, width int) string {
	filled := progress * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func init() {
	simulateCmd.Flags().Duration("tick", 0, "Time between progress steps (default from config)")
	simulateCmd.Flags().Duration("settle", 0, "Hold time after completion (default from config)")
}
