package memory

import (
	"context"
	"sync"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// pairKey identifies the unordered conversation pair.
type pairKey struct{ low, high int }

func keyFor(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{low: a, high: b}
}

type messageStore struct {
	mu       sync.RWMutex
	messages map[pairKey][]*domain.Message
}

func NewMessageStore() repository.MessageRepository {
	return &messageStore{messages: make(map[pairKey][]*domain.Message)}
}

func (s *messageStore) Append(ctx context.Context, msg *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := keyFor(msg.SenderID, msg.ReceiverID)
	m := *msg
	s.messages[k] = append(s.messages[k], &m)
	return nil
}

func (s *messageStore) History(ctx context.Context, userID, partnerID int) ([]*domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.messages[keyFor(userID, partnerID)]
	out := make([]*domain.Message, len(history))
	for i, m := range history {
		c := *m
		out[i] = &c
	}
	return out, nil
}

func (s *messageStore) UpdateReaction(ctx context.Context, userID, partnerID int, messageID, reaction string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.messages[keyFor(userID, partnerID)] {
		if m.ID == messageID {
			m.Reaction = reaction
			return nil
		}
	}
	return domain.ErrMessageNotFound
}

func (s *messageStore) DeleteForUser(ctx context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.messages {
		if k.low == userID || k.high == userID {
			delete(s.messages, k)
		}
	}
	return nil
}
