package repository

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

// MessageRepository is the conversation log between user pairs.
type MessageRepository interface {
	Append(ctx context.Context, msg *domain.Message) error
	History(ctx context.Context, userID, partnerID int) ([]*domain.Message, error)
	// UpdateReaction overwrites the reaction on one message of the pair's
	// conversation. An empty reaction clears it.
	UpdateReaction(ctx context.Context, userID, partnerID int, messageID, reaction string) error
	// DeleteForUser removes every message the user sent or received, in all
	// conversations. Used by the user deletion cascade.
	DeleteForUser(ctx context.Context, userID int) error
}
