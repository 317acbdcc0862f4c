package app

import (
	"github.com/alphaquant/academy/internal/market"
	"github.com/alphaquant/academy/internal/nav"
	"github.com/alphaquant/academy/internal/progress"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/screens/analyst"
	assistantscreen "github.com/alphaquant/academy/internal/screens/assistant"
	"github.com/alphaquant/academy/internal/screens/curriculum"
	"github.com/alphaquant/academy/internal/screens/dashboard"
	"github.com/alphaquant/academy/internal/screens/datasets"
	"github.com/alphaquant/academy/internal/screens/home"
	marketscreen "github.com/alphaquant/academy/internal/screens/market"
	"github.com/alphaquant/academy/internal/screens/projects"
	"github.com/alphaquant/academy/internal/screens/search"
	"github.com/alphaquant/academy/internal/screens/welcome"
	"github.com/alphaquant/academy/internal/simulation"
)

func (m AppModel) splash() screen.Screen {
	return welcome.New(m.homeScreen)
}

func (m AppModel) homeScreen() screen.Screen {
	h := home.New(m.deps.Tracker)
	if m.deps.Notice != "" {
		h.SetNotice(m.deps.Notice)
	}
	return h
}

// sectionScreen builds a fresh screen for s. Screens that own timers get
// their own runner or feed so that closing one never affects the next.
func (m AppModel) sectionScreen(s nav.Section, focus string) screen.Screen {
	switch s {
	case nav.Curriculum:
		c := curriculum.New(m.deps.Tracker)
		if focus != "" {
			c.Focus(progress.Key(focus))
		}
		return c
	case nav.Projects:
		p := projects.New()
		if focus != "" {
			p.Select(focus)
		}
		return p
	case nav.Data:
		return datasets.New()
	case nav.Analyst:
		opts := []simulation.Option{simulation.WithLogger(m.deps.Logger)}
		if m.deps.Recorder != nil {
			opts = append(opts, simulation.WithRecorder(m.deps.Recorder))
		}
		return analyst.New(simulation.NewRunner(m.deps.Simulation, opts...))
	case nav.Market:
		feed := market.NewFeed(nil)
		if m.deps.MarketPaused {
			feed.Toggle()
		}
		return marketscreen.New(feed, m.deps.MarketInterval)
	case nav.Dashboard:
		return dashboard.New(m.deps.Tracker)
	case nav.Assistant:
		return assistantscreen.New(m.deps.Assistant)
	case nav.Search:
		return search.New()
	default:
		return nil
	}
}
