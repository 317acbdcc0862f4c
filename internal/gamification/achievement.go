package gamification

// Achievement is a badge with an XP bonus.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	XP          int
	Unlocked    bool
}

const (
	weekStreakDays  = 7
	speedLearnerDay = 5
)

// Inputs are the progress facts achievements are evaluated against.
type Inputs struct {
	Completed       int
	TotalModules    int
	TracksCompleted int
	LongestStreak   int
	BestDay         int
}

// Achievements evaluates every achievement in display order.
func Achievements(in Inputs) []Achievement {
	return []Achievement{
		{
			ID: "first_module", Name: "First Steps", Icon: "★",
			Description: "Complete your first module", XP: 50,
			Unlocked: in.Completed >= 1,
		},
		{
			ID: "track_complete", Name: "Track Master", Icon: "🏆",
			Description: "Complete an entire track", XP: 500,
			Unlocked: in.TracksCompleted >= 1,
		},
		{
			ID: "week_streak", Name: "Week Warrior", Icon: "🔥",
			Description: "7-day learning streak", XP: 200,
			Unlocked: in.LongestStreak >= weekStreakDays,
		},
		{
			ID: "half_curriculum", Name: "Halfway There", Icon: "◎",
			Description: "Complete 50% of curriculum", XP: 1000,
			Unlocked: in.TotalModules > 0 && in.Completed*2 >= in.TotalModules,
		},
		{
			// Project completion is not tracked, so this never unlocks.
			ID: "all_projects", Name: "Project Pro", Icon: "🏅",
			Description: "Complete all 3 projects", XP: 750,
		},
		{
			ID: "speed_learner", Name: "Speed Learner", Icon: "⚡",
			Description: "Complete 5 modules in 1 day", XP: 300,
			Unlocked: in.BestDay >= speedLearnerDay,
		},
	}
}

// Unlocked filters the unlocked achievements.
func Unlocked(all []Achievement) []Achievement {
	var out []Achievement
	for _, a := range all {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}
