package suggest

import (
	"context"
	"testing"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/gemini"
	"github.com/skillswap-app/skillswap-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuggestUseCase() *SuggestUseCase {
	skills := memory.NewSkillStore([]domain.Skill{
		{ID: 1, Name: "Guitar"},
		{ID: 2, Name: "Spanish"},
	})
	return NewSuggestUseCase(skills, nil)
}

func TestConversationStartersWithoutCollaborator(t *testing.T) {
	uc := newSuggestUseCase()

	starters, err := uc.ConversationStarters(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, gemini.FallbackStarters("Guitar", "Spanish"), starters)
}

func TestConversationStartersUnknownSkill(t *testing.T) {
	uc := newSuggestUseCase()

	_, err := uc.ConversationStarters(context.Background(), 1, 99)
	assert.ErrorIs(t, err, domain.ErrSkillNotFound)

	_, err = uc.ConversationStarters(context.Background(), 99, 2)
	assert.ErrorIs(t, err, domain.ErrSkillNotFound)
}
