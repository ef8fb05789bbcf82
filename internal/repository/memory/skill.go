package memory

import (
	"context"
	"sort"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

type skillRepo struct {
	s *Store
}

func (r *skillRepo) list(match func(domain.Skill) bool) []domain.Skill {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Skill, 0, len(r.s.skills))
	for _, sk := range r.s.skills {
		if match(sk) {
			out = append(out, sk)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].SkillName < out[j].SkillName
	})
	return out
}

func (r *skillRepo) ListByOwner(_ context.Context, userID string) ([]domain.Skill, error) {
	return r.list(func(sk domain.Skill) bool { return sk.UserID == userID }), nil
}

func (r *skillRepo) ListAll(_ context.Context) ([]domain.Skill, error) {
	return r.list(func(domain.Skill) bool { return true }), nil
}

func (r *skillRepo) FindByName(_ context.Context, userID, skillName string) (*domain.Skill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, sk := range r.s.skills {
		if sk.UserID == userID && sk.SkillName == skillName {
			out := sk
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *skillRepo) Create(_ context.Context, skill *domain.Skill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sk := range r.s.skills {
		if sk.UserID == skill.UserID && sk.SkillName == skill.SkillName {
			return domain.ErrConflict
		}
	}
	skill.ID = uuid.NewString()
	now := time.Now().UTC()
	skill.CreatedAt = now
	skill.UpdatedAt = now
	r.s.skills[skill.ID] = *skill
	return nil
}

func (r *skillRepo) UpdateLevel(_ context.Context, id string, level int, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sk, ok := r.s.skills[id]
	if !ok {
		return nil
	}
	sk.Level = level
	sk.UpdatedAt = updatedAt
	r.s.skills[id] = sk
	return nil
}

func (r *skillRepo) DeleteByName(_ context.Context, userID, skillName string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, sk := range r.s.skills {
		if sk.UserID == userID && sk.SkillName == skillName {
			delete(r.s.skills, id)
		}
	}
	return nil
}
