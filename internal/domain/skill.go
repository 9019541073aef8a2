package domain

// Proficiency levels for a skill a user can teach.
const (
	ProficiencyBeginner     = 1
	ProficiencyIntermediate = 2
	ProficiencyExpert       = 3
)

type Skill struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// UserSkill is a skill a user offers to teach, with a self-assessed proficiency.
type UserSkill struct {
	Skill
	Proficiency int `json:"proficiency" db:"proficiency"`
}
