package feed

import (
	"context"
	"fmt"
	"sort"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// FeedUseCase computes the discovery feed: users the current user could still
// connect with, best-rated teachers first. Pure derived view, recomputed on
// every call.
type FeedUseCase struct {
	userRepo repository.UserRepository
}

func NewFeedUseCase(userRepo repository.UserRepository) *FeedUseCase {
	return &FeedUseCase{userRepo: userRepo}
}

// CandidateResponse is one entry of the discovery feed.
type CandidateResponse struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	Bio           string             `json:"bio,omitempty"`
	SkillsToTeach []domain.UserSkill `json:"skills_to_teach"`
	SkillsToLearn []domain.Skill     `json:"skills_to_learn"`
	TeacherRating float64            `json:"teacher_rating"`
	TotalRatings  int                `json:"total_ratings"`
}

// Candidates returns every user the current user is not yet connected to,
// excluding themselves and administrative accounts, ordered by descending
// teacher rating with stable ties.
func (uc *FeedUseCase) Candidates(ctx context.Context, currentUserID int) ([]*CandidateResponse, error) {
	current, err := uc.userRepo.GetByID(ctx, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	all, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	candidates := make([]*domain.User, 0, len(all))
	for _, u := range all {
		if u.ID == currentUserID || u.IsAdmin || current.HasMatch(u.ID) {
			continue
		}
		candidates = append(candidates, u)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TeacherRating > candidates[j].TeacherRating
	})

	responses := make([]*CandidateResponse, 0, len(candidates))
	for _, u := range candidates {
		responses = append(responses, &CandidateResponse{
			ID:            u.ID,
			Name:          u.Name,
			Bio:           u.Bio,
			SkillsToTeach: u.SkillsToTeach,
			SkillsToLearn: u.SkillsToLearn,
			TeacherRating: u.TeacherRating,
			TotalRatings:  u.TotalRatings,
		})
	}
	return responses, nil
}
