package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, author_id, caption, likes, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.AuthorID, post.Caption, post.Likes, post.Comments, post.CreatedAt)
	return err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID int) ([]*domain.Post, error) {
	var posts []*domain.Post
	query := `
		SELECT id, author_id, caption, likes, comments, created_at
		FROM posts WHERE author_id = $1 ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	return posts, err
}

func (r *postRepository) DeleteByAuthor(ctx context.Context, authorID int) error {
	query := `DELETE FROM posts WHERE author_id = $1`
	_, err := r.db.ExecContext(ctx, query, authorID)
	return err
}
