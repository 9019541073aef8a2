package admin

import (
	"context"
	"fmt"

	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// AdminUseCase covers administrative operations on the user population.
type AdminUseCase struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	postRepo    repository.PostRepository
}

func NewAdminUseCase(
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
	postRepo repository.PostRepository,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		postRepo:    postRepo,
	}
}

// DeleteUser removes the user and cascades: every other user's match view of
// them is pruned, their conversations are erased and their posts removed.
// Confirmation is the caller's responsibility.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, userID int) error {
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	if err := uc.messageRepo.DeleteForUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete messages of user %d: %w", userID, err)
	}
	if err := uc.postRepo.DeleteByAuthor(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete posts of user %d: %w", userID, err)
	}
	return nil
}
