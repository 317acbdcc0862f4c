package gamification

import (
	"sort"
	"time"
)

// Streak counts consecutive calendar days with at least one completion.
type Streak struct {
	Current int
	Longest int
}

// day truncates t to its calendar date in t's location.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// distinctDays returns the sorted unique completion days in now's location.
func distinctDays(times []time.Time, loc *time.Location) []time.Time {
	seen := make(map[time.Time]bool, len(times))
	var days []time.Time
	for _, t := range times {
		d := day(t.In(loc))
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// StreakFor computes streaks from completion times. The current streak is
// still alive when the most recent completion was today or yesterday.
func StreakFor(times []time.Time, now time.Time) Streak {
	days := distinctDays(times, now.Location())
	if len(days) == 0 {
		return Streak{}
	}

	var s Streak
	run := 1
	s.Longest = 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > s.Longest {
			s.Longest = run
		}
	}

	today := day(now)
	last := days[len(days)-1]
	if last.Equal(today) || last.Equal(today.AddDate(0, 0, -1)) {
		s.Current = run
	}
	return s
}

// BestDay returns the largest number of completions on a single day.
func BestDay(times []time.Time, loc *time.Location) int {
	counts := make(map[time.Time]int, len(times))
	best := 0
	for _, t := range times {
		d := day(t.In(loc))
		counts[d]++
		if counts[d] > best {
			best = counts[d]
		}
	}
	return best
}
