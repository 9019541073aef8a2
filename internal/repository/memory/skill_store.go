package memory

import (
	"context"
	"sort"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// skillStore is the static skill catalog. Read-only after construction.
type skillStore struct {
	skills map[int]domain.Skill
}

func NewSkillStore(catalog []domain.Skill) repository.SkillRepository {
	s := &skillStore{skills: make(map[int]domain.Skill, len(catalog))}
	for _, sk := range catalog {
		s.skills[sk.ID] = sk
	}
	return s
}

func (s *skillStore) GetByID(ctx context.Context, id int) (*domain.Skill, error) {
	sk, ok := s.skills[id]
	if !ok {
		return nil, domain.ErrSkillNotFound
	}
	return &sk, nil
}

func (s *skillStore) List(ctx context.Context) ([]*domain.Skill, error) {
	skills := make([]*domain.Skill, 0, len(s.skills))
	for id := range s.skills {
		sk := s.skills[id]
		skills = append(skills, &sk)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].ID < skills[j].ID })
	return skills, nil
}
