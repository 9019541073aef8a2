package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// userStore keeps the whole user population in memory behind one mutex.
// All reads hand out deep copies, so callers can only change stored state
// through Update/UpdatePair/Delete.
type userStore struct {
	mu     sync.RWMutex
	users  map[int]*domain.User
	nextID int
}

func NewUserStore(seed []*domain.User) repository.UserRepository {
	s := &userStore{
		users:  make(map[int]*domain.User, len(seed)),
		nextID: 1,
	}
	for _, u := range seed {
		s.users[u.ID] = u.Clone()
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	return s
}

func (s *userStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (s *userStore) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u.Clone())
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *userStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == 0 {
		user.ID = s.nextID
	}
	if user.ID >= s.nextID {
		s.nextID = user.ID + 1
	}
	s.users[user.ID] = user.Clone()
	return nil
}

func (s *userStore) Update(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	s.users[user.ID] = user.Clone()
	return nil
}

// UpdatePair runs transform against deep copies of both users and swaps them
// in together only when the transform succeeds. A failed transform leaves the
// store untouched, so no partial mirrored write is ever observable.
func (s *userStore) UpdatePair(ctx context.Context, aID, bID int, transform func(a, b *domain.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.users[aID]
	if !ok {
		return domain.ErrUserNotFound
	}
	b, ok := s.users[bID]
	if !ok {
		return domain.ErrUserNotFound
	}

	ca, cb := a.Clone(), b.Clone()
	if err := transform(ca, cb); err != nil {
		return err
	}

	s.users[aID] = ca
	s.users[bID] = cb
	return nil
}

func (s *userStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)

	// Prune dangling match views in everyone else.
	for _, u := range s.users {
		kept := u.Matches[:0]
		for _, m := range u.Matches {
			if m.UserID != id {
				kept = append(kept, m)
			}
		}
		u.Matches = kept
	}
	return nil
}
