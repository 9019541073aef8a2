package chat

import (
	"context"
	"testing"
	"time"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededChat(t *testing.T) *ChatUseCase {
	t.Helper()
	store := memory.NewMessageStore()
	ctx := context.Background()

	msgs := []*domain.Message{
		{ID: "m1", SenderID: 1, ReceiverID: 2, Text: "hey, ready to swap?", SentAt: time.Now()},
		{ID: "m2", SenderID: 2, ReceiverID: 1, Text: "absolutely", SentAt: time.Now()},
	}
	for _, m := range msgs {
		require.NoError(t, store.Append(ctx, m))
	}
	return NewChatUseCase(store)
}

func TestHistoryReturnsBothDirections(t *testing.T) {
	uc := seededChat(t)

	history, err := uc.History(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "m1", history[0].ID)
	assert.Equal(t, "m2", history[1].ID)

	// Same conversation from the partner's side.
	mirrored, err := uc.History(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Len(t, mirrored, 2)
}

func TestReactSetsAndToggles(t *testing.T) {
	uc := seededChat(t)
	ctx := context.Background()

	msg, err := uc.React(ctx, 1, 2, "m2", "❤️")
	require.NoError(t, err)
	assert.Equal(t, "❤️", msg.Reaction)

	history, err := uc.History(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "❤️", history[1].Reaction)

	// A different reaction overwrites.
	msg, err = uc.React(ctx, 1, 2, "m2", "👍")
	require.NoError(t, err)
	assert.Equal(t, "👍", msg.Reaction)

	// Repeating the current reaction clears it.
	msg, err = uc.React(ctx, 1, 2, "m2", "👍")
	require.NoError(t, err)
	assert.Empty(t, msg.Reaction)

	history, err = uc.History(ctx, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, history[1].Reaction)
}

func TestReactUnknownMessage(t *testing.T) {
	uc := seededChat(t)

	_, err := uc.React(context.Background(), 1, 2, "nope", "👍")
	assert.ErrorIs(t, err, domain.ErrMessageNotFound)

	// A real message id, but in another pair's conversation.
	_, err = uc.React(context.Background(), 1, 3, "m1", "👍")
	assert.ErrorIs(t, err, domain.ErrMessageNotFound)
}
