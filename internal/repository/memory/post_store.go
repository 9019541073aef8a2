package memory

import (
	"context"
	"sync"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

type postStore struct {
	mu    sync.RWMutex
	posts []*domain.Post
}

func NewPostStore() repository.PostRepository {
	return &postStore{}
}

func (s *postStore) Create(ctx context.Context, post *domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := *post
	s.posts = append(s.posts, &p)
	return nil
}

func (s *postStore) ListByAuthor(ctx context.Context, authorID int) ([]*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Post
	for _, p := range s.posts {
		if p.AuthorID == authorID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *postStore) DeleteByAuthor(ctx context.Context, authorID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.posts[:0]
	for _, p := range s.posts {
		if p.AuthorID != authorID {
			kept = append(kept, p)
		}
	}
	s.posts = kept
	return nil
}
