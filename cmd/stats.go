package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/gamification"
	"github.com/alphaquant/academy/internal/market"
	"github.com/alphaquant/academy/internal/progress"
	"github.com/alphaquant/academy/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show XP, level, streaks, achievements and recent simulations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		tracker := progress.NewTracker(e.store.ProgressRepo())
		if err := tracker.Load(ctx); err != nil {
			return err
		}
		p := gamification.Build(tracker.State(), catalog.Tracks(), time.Now())

		fmt.Printf("Level %d  ·  %d XP  ·  %d XP to next level\n", p.XP.Level, p.XP.Total, p.XP.ToNextLevel())
		fmt.Printf("Streak: %d days (best %d)\n", p.Streak.Current, p.Streak.Longest)
		fmt.Printf("Modules: %d/%d (%.0f%%)\n\n", p.Summary.Completed, p.Summary.Total, p.Summary.Percent())

		fmt.Println("Achievements")
		fmt.Println(strings.Repeat("─", 60))
		for _, a := range p.Achievements {
			mark := "🔒"
			if a.Unlocked {
				mark = a.Icon
			}
			fmt.Printf("  %s  %-16s  %-32s  +%d XP\n", mark, a.Name, a.Description, a.XP)
		}

		fmt.Println()
		fmt.Println("Leaderboard")
		fmt.Println(strings.Repeat("─", 60))
		for _, l := range p.Leaderboard {
			marker := " "
			if l.IsUser {
				marker = "▸"
			}
			fmt.Printf("%s %d. %-16s %6d XP\n", marker, l.Rank, l.Name, l.XP)
		}

		runs, err := e.store.SimulationRepo().QuerySimulationRuns(ctx, store.QueryOpts{Limit: 5})
		if err != nil {
			return fmt.Errorf("query simulation runs: %w", err)
		}
		if len(runs) == 0 {
			return nil
		}
		fmt.Println()
		fmt.Println("Recent Simulations")
		fmt.Println(strings.Repeat("─", 60))
		for _, r := range runs {
			outcome := fmt.Sprintf("aborted at %d%%", r.FinalProgress)
			if r.Completed {
				outcome = fmt.Sprintf("P&L +$%s  Sharpe %.3f", market.FormatPrice(r.TotalPnL), r.Sharpe)
			}
			fmt.Printf("  %s  %-5s  %s\n", r.StartedAt.Local().Format("2006-01-02 15:04"), r.Ticker, outcome)
		}
		return nil
	},
}
