package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Inspect and change curriculum progress",
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every module with its completion state",
	RunE: func(cmd *cobra.Command, args []string) error {
		trackFilter, _ := cmd.Flags().GetInt("track")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		tracker := progress.NewTracker(e.store.ProgressRepo())
		if err := tracker.Load(cmd.Context()); err != nil {
			return err
		}
		st := tracker.State()

		tracks := catalog.Tracks()
		if trackFilter != 0 {
			t := catalog.TrackByID(trackFilter)
			if t == nil {
				return fmt.Errorf("no track %d", trackFilter)
			}
			tracks = []catalog.Track{*t}
		}

		for _, t := range tracks {
			sum := progress.SummarizeTrack(st, t)
			fmt.Printf("Track %d: %s  (%d/%d)\n", t.ID, t.Title, sum.Completed, sum.Total)
			fmt.Println(strings.Repeat("─", 72))
			for _, m := range t.Modules {
				mark, when := "○", ""
				if at, ok := st.CompletedAt(t.ID, m.Name); ok {
					mark = "✓"
					when = at.Local().Format("2006-01-02")
				}
				fmt.Printf("  %s  %-24s  %4s  %s\n", mark, m.Name, m.Duration, when)
			}
			fmt.Println()
		}

		total := progress.Summarize(st, catalog.Tracks())
		fmt.Printf("%d/%d modules complete (%.0f%%)\n", total.Completed, total.Total, total.Percent())

		if stale := progress.Stale(st, catalog.Tracks()); len(stale) > 0 {
			fmt.Printf("\n%d stored completions match no module:\n", len(stale))
			for _, k := range stale {
				fmt.Printf("  ? %s\n", k)
			}
		}
		return nil
	},
}

var progressToggleCmd = &cobra.Command{
	Use:   "toggle <track-id> <module>",
	Short: "Mark a module complete, or pending if it already is",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		trackID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid track ID %q: %w", args[0], err)
		}
		module := strings.Join(args[1:], " ")
		if !catalog.HasModule(trackID, module) {
			return fmt.Errorf("track %d has no module %q", trackID, module)
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		tracker := progress.NewTracker(e.store.ProgressRepo())
		if err := tracker.Load(cmd.Context()); err != nil {
			return err
		}
		done, err := tracker.Toggle(cmd.Context(), trackID, module)
		if err != nil {
			return err
		}
		e.logger.Info("module toggled",
			zap.String("key", string(progress.KeyFor(trackID, module))),
			zap.Bool("complete", done))

		if done {
			fmt.Printf("✓ %s marked complete\n", module)
		} else {
			fmt.Printf("○ %s marked pending\n", module)
		}
		return nil
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all curriculum progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("Reset all progress? This cannot be undone. [y/N] ") {
			fmt.Println("Cancelled.")
			return nil
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		tracker := progress.NewTracker(e.store.ProgressRepo())
		if err := tracker.Reset(cmd.Context()); err != nil {
			return err
		}
		e.logger.Info("progress reset")
		fmt.Println("Progress reset.")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func init() {
	progressListCmd.Flags().Int("track", 0, "Only show this track")
	progressResetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	progressCmd.AddCommand(progressListCmd)
	progressCmd.AddCommand(progressToggleCmd)
	progressCmd.AddCommand(progressResetCmd)
}
