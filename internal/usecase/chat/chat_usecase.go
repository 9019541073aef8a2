package chat

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// ChatUseCase reads the conversation log between two users and manages
// reactions on individual messages.
type ChatUseCase struct {
	messageRepo repository.MessageRepository
}

func NewChatUseCase(messageRepo repository.MessageRepository) *ChatUseCase {
	return &ChatUseCase{messageRepo: messageRepo}
}

// History returns the conversation with the partner in send order, system
// announcements included.
func (uc *ChatUseCase) History(ctx context.Context, userID, partnerID int) ([]*domain.Message, error) {
	return uc.messageRepo.History(ctx, userID, partnerID)
}

// React toggles a reaction on one message of the conversation: reacting with
// the emoji already present clears it, anything else overwrites. Returns the
// message with its updated reaction.
func (uc *ChatUseCase) React(ctx context.Context, userID, partnerID int, messageID, reaction string) (*domain.Message, error) {
	history, err := uc.messageRepo.History(ctx, userID, partnerID)
	if err != nil {
		return nil, err
	}

	var msg *domain.Message
	for _, m := range history {
		if m.ID == messageID {
			msg = m
			break
		}
	}
	if msg == nil {
		return nil, domain.ErrMessageNotFound
	}

	if msg.Reaction == reaction {
		reaction = ""
	}
	if err := uc.messageRepo.UpdateReaction(ctx, userID, partnerID, messageID, reaction); err != nil {
		return nil, err
	}
	msg.Reaction = reaction
	return msg, nil
}
