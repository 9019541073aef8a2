package domain

// User is a member of the platform together with their progression state.
// Matches holds one directed view per connected counterpart, keyed by
// the counterpart's user id.
type User struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Bio            string      `json:"bio,omitempty"`
	IsAdmin        bool        `json:"is_admin,omitempty"`
	SkillsToTeach  []UserSkill `json:"skills_to_teach"`
	SkillsToLearn  []Skill     `json:"skills_to_learn"`
	Matches        []Match     `json:"matches"`
	Level          int         `json:"level"`
	XP             int         `json:"xp"`
	Streak         int         `json:"streak"`
	Badges         []string    `json:"badges"`
	VerifiedSkills []int       `json:"verified_skills,omitempty"`
	TeacherRating  float64     `json:"teacher_rating"`
	TotalRatings   int         `json:"total_ratings"`
}

// MatchWith returns a pointer to the user's match with the given counterpart,
// or nil if they are not connected.
func (u *User) MatchWith(partnerID int) *Match {
	for i := range u.Matches {
		if u.Matches[i].UserID == partnerID {
			return &u.Matches[i]
		}
	}
	return nil
}

// HasMatch reports whether the user is connected to the given counterpart.
func (u *User) HasMatch(partnerID int) bool {
	return u.MatchWith(partnerID) != nil
}

// HasBadge reports whether the user already holds the named badge.
func (u *User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the user, so a transform can be applied and
// discarded without touching the stored entity.
func (u *User) Clone() *User {
	c := *u
	c.SkillsToTeach = append([]UserSkill(nil), u.SkillsToTeach...)
	c.SkillsToLearn = append([]Skill(nil), u.SkillsToLearn...)
	c.Badges = append([]string(nil), u.Badges...)
	c.VerifiedSkills = append([]int(nil), u.VerifiedSkills...)
	c.Matches = make([]Match, len(u.Matches))
	for i, m := range u.Matches {
		cm := m
		if m.SessionProposal != nil {
			p := *m.SessionProposal
			cm.SessionProposal = &p
		}
		if m.ScheduledSession != nil {
			t := *m.ScheduledSession
			cm.ScheduledSession = &t
		}
		if m.Rating != nil {
			r := *m.Rating
			cm.Rating = &r
		}
		c.Matches[i] = cm
	}
	return &c
}
