package memory

import "github.com/skillswap-app/skillswap-backend/internal/domain"

// DefaultSkills is the bundled skill catalog used when no external directory
// is supplied.
func DefaultSkills() []domain.Skill {
	return []domain.Skill{
		{ID: 1, Name: "Guitar"},
		{ID: 2, Name: "Spanish"},
		{ID: 3, Name: "Photography"},
		{ID: 4, Name: "Cooking"},
		{ID: 5, Name: "Yoga"},
		{ID: 6, Name: "Web Development"},
		{ID: 7, Name: "Public Speaking"},
		{ID: 8, Name: "Chess"},
		{ID: 9, Name: "Painting"},
		{ID: 10, Name: "French"},
	}
}

// DefaultUsers is a small starter directory so the service is usable out of
// the box. The host application normally replaces this with its own users.
func DefaultUsers() []*domain.User {
	skill := func(id int) domain.Skill {
		for _, s := range DefaultSkills() {
			if s.ID == id {
				return s
			}
		}
		return domain.Skill{}
	}
	teach := func(id, proficiency int) domain.UserSkill {
		return domain.UserSkill{Skill: skill(id), Proficiency: proficiency}
	}

	return []*domain.User{
		{
			ID:   1,
			Name: "Aarav Sharma",
			Bio:  "Guitarist looking to pick up Spanish before a trip.",
			SkillsToTeach: []domain.UserSkill{
				teach(1, domain.ProficiencyExpert),
				teach(8, domain.ProficiencyIntermediate),
			},
			SkillsToLearn: []domain.Skill{skill(2)},
			Level:         1,
			Badges:        []string{"Newbie"},
		},
		{
			ID:   2,
			Name: "Maria Lopez",
			Bio:  "Native Spanish speaker, amateur photographer.",
			SkillsToTeach: []domain.UserSkill{
				teach(2, domain.ProficiencyExpert),
			},
			SkillsToLearn: []domain.Skill{skill(1), skill(3)},
			Level:         2,
			Badges:        []string{"Newbie"},
			TeacherRating: 4.8,
			TotalRatings:  12,
		},
		{
			ID:   3,
			Name: "Ken Watanabe",
			Bio:  "Weekend chef, teaching knife skills and ramen.",
			SkillsToTeach: []domain.UserSkill{
				teach(4, domain.ProficiencyExpert),
				teach(3, domain.ProficiencyBeginner),
			},
			SkillsToLearn: []domain.Skill{skill(6)},
			Level:         1,
			Badges:        []string{"Newbie"},
			TeacherRating: 5.0,
			TotalRatings:  4,
		},
		{
			ID:   4,
			Name: "Priya Patel",
			Bio:  "Yoga instructor learning to paint.",
			SkillsToTeach: []domain.UserSkill{
				teach(5, domain.ProficiencyExpert),
			},
			SkillsToLearn: []domain.Skill{skill(9)},
			Level:         3,
			Badges:        []string{"Newbie"},
			TeacherRating: 3.2,
			TotalRatings:  9,
		},
		{
			ID:      5,
			Name:    "Admin",
			IsAdmin: true,
			Level:   1,
			Badges:  []string{"Newbie"},
		},
	}
}
