package gamification

import "sort"

// Entry is a leaderboard row.
type Entry struct {
	Rank   int
	Name   string
	XP     int
	IsUser bool
}

var peers = []Entry{
	{Name: "Alex Chen", XP: 2450},
	{Name: "Sarah Kim", XP: 2100},
	{Name: "Mike Johnson", XP: 1800},
	{Name: "Emma Wilson", XP: 1650},
}

// Leaderboard ranks the learner against the fixed peers by XP, highest
// first. Ties go to the peer.
func Leaderboard(userXP int) []Entry {
	entries := make([]Entry, 0, len(peers)+1)
	entries = append(entries, peers...)
	entries = append(entries, Entry{Name: "You", XP: userXP, IsUser: true})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].XP > entries[j].XP
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
