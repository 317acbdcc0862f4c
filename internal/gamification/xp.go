// Package gamification derives XP, levels, streaks, achievements and the
// leaderboard from curriculum progress. Nothing here is stored; every value
// is recomputed from the progress state.
package gamification

const (
	XPPerModule = 100
	XPPerLevel  = 500
)

// XP holds the learner's experience points and level.
type XP struct {
	Total int
	Level int
}

// XPFor converts a completed-module count into XP.
func XPFor(completed int) XP {
	if completed < 0 {
		completed = 0
	}
	total := completed * XPPerModule
	return XP{Total: total, Level: total/XPPerLevel + 1}
}

// ToNextLevel returns the XP still needed for the next level.
func (x XP) ToNextLevel() int {
	return XPPerLevel - x.Total%XPPerLevel
}

// LevelPercent returns progress through the current level in [0, 100).
func (x XP) LevelPercent() float64 {
	return float64(x.Total%XPPerLevel) * 100 / XPPerLevel
}
