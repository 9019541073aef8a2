// Package gamification is the single place XP, levels and badges are
// computed. Every lifecycle transition that awards progression goes through
// here so the rules cannot drift between call sites.
package gamification

import "github.com/skillswap-app/skillswap-backend/internal/domain"

// XP awards per lifecycle event. A level rolls over every 100 XP.
const (
	XPConnect      = 25
	XPCompleteSwap = 50

	LevelUpThreshold = 100
)

// Progress is a level/xp pair after applying an award.
type Progress struct {
	Level int
	XP    int
}

// ApplyXP adds amount to the given level/xp snapshot, carrying whole
// LevelUpThreshold chunks into the level. XP never decreases.
func ApplyXP(level, xp, amount int) Progress {
	total := xp + amount
	return Progress{
		Level: level + total/LevelUpThreshold,
		XP:    total % LevelUpThreshold,
	}
}

// GrantXP applies an XP award to the user in place and recomputes badges.
func GrantXP(u *domain.User, amount int) {
	p := ApplyXP(u.Level, u.XP, amount)
	u.Level = p.Level
	u.XP = p.XP
	u.Badges = RecomputeBadges(u)
}

type badgeRule struct {
	threshold int
	name      string
}

var (
	matchBadges = []badgeRule{
		{1, "First Match"},
		{5, "Social Butterfly"},
		{10, "Super Connector"},
	}
	teachBadges = []badgeRule{
		{1, "First Lesson"},
		{3, "Mentor"},
		{5, "Guru"},
	}
	learnBadges = []badgeRule{
		{1, "Curious Learner"},
		{3, "Skill Seeker"},
		{5, "Polymath"},
	}
	streakBadges = []badgeRule{
		{3, "Consistent"},
		{7, "Dedicated"},
		{14, "Unstoppable"},
	}
)

// RecomputeBadges derives the user's badge set from their current counters,
// unioned with badges already held. Badges are additive only: one earned
// under old counters survives even if the counters no longer qualify.
func RecomputeBadges(u *domain.User) []string {
	badges := append([]string(nil), u.Badges...)
	held := make(map[string]bool, len(badges))
	for _, b := range badges {
		held[b] = true
	}

	grant := func(rules []badgeRule, count int) {
		for _, r := range rules {
			if count >= r.threshold && !held[r.name] {
				badges = append(badges, r.name)
				held[r.name] = true
			}
		}
	}

	grant(matchBadges, len(u.Matches))
	grant(teachBadges, len(u.SkillsToTeach))
	grant(learnBadges, len(u.SkillsToLearn))
	grant(streakBadges, u.Streak)

	return badges
}

// RecordRating folds one more rating into a teacher's running average.
func RecordRating(avg float64, count int, rating int) (float64, int) {
	newCount := count + 1
	return (avg*float64(count) + float64(rating)) / float64(newCount), newCount
}
