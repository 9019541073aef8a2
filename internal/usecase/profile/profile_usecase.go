package profile

import (
	"context"
	"fmt"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/gamification"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// ProfileUseCase handles profile edits. Skill sets feed the badge thresholds,
// so every edit runs a badge recompute.
type ProfileUseCase struct {
	userRepo  repository.UserRepository
	skillRepo repository.SkillRepository
}

func NewProfileUseCase(userRepo repository.UserRepository, skillRepo repository.SkillRepository) *ProfileUseCase {
	return &ProfileUseCase{userRepo: userRepo, skillRepo: skillRepo}
}

// SkillEntry references a catalog skill in an update request.
type SkillEntry struct {
	SkillID     int `json:"skill_id" binding:"required"`
	Proficiency int `json:"proficiency" binding:"omitempty,min=1,max=3"`
}

// UpdateProfileRequest carries a full replacement of the editable fields.
type UpdateProfileRequest struct {
	Name          *string      `json:"name"`
	Bio           *string      `json:"bio"`
	SkillsToTeach []SkillEntry `json:"skills_to_teach"`
	SkillsToLearn []SkillEntry `json:"skills_to_learn"`
}

// UpdateProfile applies the edit and recomputes the user's badge set.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if req.SkillsToTeach != nil {
		teach := make([]domain.UserSkill, 0, len(req.SkillsToTeach))
		for _, e := range req.SkillsToTeach {
			skill, err := uc.skillRepo.GetByID(ctx, e.SkillID)
			if err != nil {
				return nil, err
			}
			proficiency := e.Proficiency
			if proficiency == 0 {
				proficiency = domain.ProficiencyBeginner
			}
			teach = append(teach, domain.UserSkill{Skill: *skill, Proficiency: proficiency})
		}
		user.SkillsToTeach = teach

		// Verified skills must stay a subset of the taught set.
		kept := user.VerifiedSkills[:0]
		for _, id := range user.VerifiedSkills {
			for _, s := range teach {
				if s.ID == id {
					kept = append(kept, id)
					break
				}
			}
		}
		user.VerifiedSkills = kept
	}

	if req.SkillsToLearn != nil {
		learn := make([]domain.Skill, 0, len(req.SkillsToLearn))
		for _, e := range req.SkillsToLearn {
			skill, err := uc.skillRepo.GetByID(ctx, e.SkillID)
			if err != nil {
				return nil, err
			}
			learn = append(learn, *skill)
		}
		user.SkillsToLearn = learn
	}

	user.Badges = gamification.RecomputeBadges(user)

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return user, nil
}

// Get returns a user's profile.
func (uc *ProfileUseCase) Get(ctx context.Context, userID int) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}
