package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alphaquant/academy/internal/app"
	"github.com/alphaquant/academy/internal/assistant"
	"github.com/alphaquant/academy/internal/llm"
	"github.com/alphaquant/academy/internal/progress"
	"github.com/alphaquant/academy/internal/selfupdate"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	simCfg, err := e.cfg.SimulationSettings()
	if err != nil {
		return err
	}
	interval, err := e.cfg.MarketInterval()
	if err != nil {
		return err
	}

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	deps := app.Deps{
		Tracker:        tracker,
		Prefs:          e.store.PreferenceRepo(),
		Assistant:      newAssistant(ctx, e),
		Simulation:     simCfg,
		Recorder:       e.store.SimulationRepo(),
		MarketInterval: interval,
		MarketPaused:   e.cfg.Market.Paused,
		Splash:         e.cfg.UI.Splash && !noSplash,
		Notice:         updateNotice(ctx, e.logger),
		Logger:         e.logger,
	}
	e.logger.Info("starting tui",
		zap.String("version", version),
		zap.Int("completed", tracker.State().Len()))

	return app.Run(ctx, deps)
}

// newAssistant builds the assistant on the configured provider. Any
// configuration problem falls back to canned answers.
func newAssistant(ctx context.Context, e *env) *assistant.Assistant {
	canned := assistant.NewCannedProvider()
	provider, err := newProvider(ctx, e, canned)
	if err != nil {
		e.logger.Warn("llm provider unavailable, using canned answers", zap.Error(err))
		provider = nil
	}
	return assistant.New(provider, assistant.WithLogger(e.logger))
}

func newProvider(ctx context.Context, e *env, canned llm.Provider) (llm.Provider, error) {
	settings, err := e.cfg.LLMSettings()
	if err != nil {
		return nil, err
	}
	return llm.NewProvider(ctx, settings, e.store.EventRepo(),
		llm.WithLogger(e.logger),
		llm.WithCanned(canned))
}

// updateNotice checks for a newer release with a short deadline. Failures
// are logged and produce no notice.
func updateNotice(ctx context.Context, logger *zap.Logger) string {
	if version == selfupdate.DevVersion {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, 1500*time.Millisecond)
	defer cancel()

	res, err := selfupdate.NewChecker(selfupdate.WithLogger(logger)).Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil {
		logger.Debug("update check failed", zap.Error(err))
		return ""
	}
	if !res.UpdateAvailable {
		return ""
	}
	return fmt.Sprintf("Update available: %s (run `aqa update`)", res.LatestVersion)
}
