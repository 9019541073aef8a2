package repository

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

// PostRepository stores feed posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	ListByAuthor(ctx context.Context, authorID int) ([]*domain.Post, error)
	DeleteByAuthor(ctx context.Context, authorID int) error
}
