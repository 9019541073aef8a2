package match

import (
	"context"
	"fmt"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/gamification"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// MatchUseCase drives the swap lifecycle between two users: connection
// formation, status advancement and session rating. Every mutation that
// touches both sides of a pair goes through the repository's UpdatePair
// primitive, which keeps the mirrored views consistent.
type MatchUseCase struct {
	userRepo repository.UserRepository
}

func NewMatchUseCase(userRepo repository.UserRepository) *MatchUseCase {
	return &MatchUseCase{userRepo: userRepo}
}

// Connect forms a mirrored match between two users. Repeat requests are
// no-ops: the match is never duplicated and XP/streak is awarded exactly once.
func (uc *MatchUseCase) Connect(ctx context.Context, currentUserID, targetUserID int) error {
	if currentUserID == targetUserID {
		return domain.ErrCannotConnectSelf
	}

	err := uc.userRepo.UpdatePair(ctx, currentUserID, targetUserID, func(a, b *domain.User) error {
		if a.HasMatch(b.ID) || b.HasMatch(a.ID) {
			return nil
		}

		a.Matches = append(a.Matches, domain.Match{UserID: b.ID, Status: domain.SwapNotStarted})
		b.Matches = append(b.Matches, domain.Match{UserID: a.ID, Status: domain.SwapNotStarted})

		a.Streak++
		b.Streak++
		gamification.GrantXP(a, gamification.XPConnect)
		gamification.GrantXP(b, gamification.XPConnect)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to connect users %d and %d: %w", currentUserID, targetUserID, err)
	}
	return nil
}

// UpdateStatus advances the swap with partnerID to the requested status. Only
// the direct successor of the current status is allowed. The new status is
// mirrored to both views; completion XP goes to the acting user only, so each
// side earns its own completion award.
func (uc *MatchUseCase) UpdateStatus(ctx context.Context, currentUserID, partnerID int, status domain.SwapStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidTransition
	}

	return uc.userRepo.UpdatePair(ctx, currentUserID, partnerID, func(actor, partner *domain.User) error {
		actorMatch := actor.MatchWith(partner.ID)
		partnerMatch := partner.MatchWith(actor.ID)
		if actorMatch == nil || partnerMatch == nil {
			return domain.ErrMatchNotFound
		}
		if !actorMatch.Status.CanAdvanceTo(status) {
			return domain.ErrInvalidTransition
		}

		actorMatch.Status = status
		partnerMatch.Status = status

		if status == domain.SwapCompleted {
			gamification.GrantXP(actor, gamification.XPCompleteSwap)
		}
		return nil
	})
}

// RateSession records the rater's 1-5 rating of a completed swap. The rating
// lands on the rater's own view only and is immutable once set; the partner's
// teacher aggregate is updated once per distinct rater.
func (uc *MatchUseCase) RateSession(ctx context.Context, raterID, teacherID, rating int) error {
	if rating < 1 || rating > 5 {
		return domain.ErrInvalidRating
	}

	return uc.userRepo.UpdatePair(ctx, raterID, teacherID, func(rater, teacher *domain.User) error {
		m := rater.MatchWith(teacher.ID)
		if m == nil {
			return domain.ErrMatchNotFound
		}
		if m.Status != domain.SwapCompleted {
			return domain.ErrNotCompleted
		}
		if m.Rating != nil {
			return domain.ErrAlreadyRated
		}

		r := rating
		m.Rating = &r
		teacher.TeacherRating, teacher.TotalRatings =
			gamification.RecordRating(teacher.TeacherRating, teacher.TotalRatings, rating)
		return nil
	})
}

// Matches returns the current user's match views together with counterpart
// names, for the host UI.
type MatchView struct {
	domain.Match
	PartnerName string `json:"partner_name"`
}

func (uc *MatchUseCase) Matches(ctx context.Context, currentUserID int) ([]MatchView, error) {
	user, err := uc.userRepo.GetByID(ctx, currentUserID)
	if err != nil {
		return nil, err
	}

	views := make([]MatchView, 0, len(user.Matches))
	for _, m := range user.Matches {
		view := MatchView{Match: m}
		if partner, err := uc.userRepo.GetByID(ctx, m.UserID); err == nil {
			view.PartnerName = partner.Name
		}
		views = append(views, view)
	}
	return views, nil
}
