package repository

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

// SkillRepository is the read-only skill catalog.
type SkillRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Skill, error)
	List(ctx context.Context) ([]*domain.Skill, error)
}
