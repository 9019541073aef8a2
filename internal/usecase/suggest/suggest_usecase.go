package suggest

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/gemini"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// SuggestUseCase produces conversation starters for a matched pair, backed by
// the AI collaborator with fixed fallbacks.
type SuggestUseCase struct {
	skillRepo    repository.SkillRepository
	geminiClient *gemini.GeminiClient
}

func NewSuggestUseCase(skillRepo repository.SkillRepository, geminiClient *gemini.GeminiClient) *SuggestUseCase {
	return &SuggestUseCase{skillRepo: skillRepo, geminiClient: geminiClient}
}

// ConversationStarters resolves both skill names and asks the collaborator
// for openers. Never fails once the skills resolve: the fallback templates
// cover collaborator outages.
func (uc *SuggestUseCase) ConversationStarters(ctx context.Context, mySkillID, partnerSkillID int) ([]string, error) {
	mySkill, err := uc.skillRepo.GetByID(ctx, mySkillID)
	if err != nil {
		return nil, err
	}
	partnerSkill, err := uc.skillRepo.GetByID(ctx, partnerSkillID)
	if err != nil {
		return nil, err
	}
	return uc.geminiClient.ConversationStarters(ctx, mySkill.Name, partnerSkill.Name), nil
}
