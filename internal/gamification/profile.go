package gamification

import (
	"time"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/progress"
)

// TrackProgress is the completion of one track.
type TrackProgress struct {
	TrackID int
	Title   string
	Summary progress.Summary
}

// Profile is everything the learning dashboard shows.
type Profile struct {
	XP           XP
	Streak       Streak
	Summary      progress.Summary
	Tracks       []TrackProgress
	Achievements []Achievement
	Leaderboard  []Entry
}

// Build derives a profile from progress against the given tracks. Only
// completions that match a catalog module count.
func Build(s progress.State, tracks []catalog.Track, now time.Time) Profile {
	p := Profile{Summary: progress.Summarize(s, tracks)}

	var times []time.Time
	tracksDone := 0
	for _, t := range tracks {
		ts := progress.SummarizeTrack(s, t)
		p.Tracks = append(p.Tracks, TrackProgress{TrackID: t.ID, Title: t.Title, Summary: ts})
		if ts.Done() {
			tracksDone++
		}
		for _, m := range t.Modules {
			if at, ok := s.CompletedAt(t.ID, m.Name); ok {
				times = append(times, at)
			}
		}
	}

	p.XP = XPFor(p.Summary.Completed)
	p.Streak = StreakFor(times, now)
	p.Achievements = Achievements(Inputs{
		Completed:       p.Summary.Completed,
		TotalModules:    p.Summary.Total,
		TracksCompleted: tracksDone,
		LongestStreak:   p.Streak.Longest,
		BestDay:         BestDay(times, now.Location()),
	})
	p.Leaderboard = Leaderboard(p.XP.Total)
	return p
}
