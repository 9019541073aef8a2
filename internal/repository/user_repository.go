package repository

import (
	"context"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

// UserRepository owns the user population, including each user's directed
// match views. Callers never mutate stored entities directly; all writes go
// through Update or UpdatePair.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error

	// UpdatePair applies transform to both users of an unordered pair as a
	// single indivisible step: either both updated views are persisted, or
	// neither is. No reader observes one side updated and the other stale.
	UpdatePair(ctx context.Context, aID, bID int, transform func(a, b *domain.User) error) error

	// Delete removes the user and strips their id from every other user's
	// match list in the same step.
	Delete(ctx context.Context, id int) error
}
