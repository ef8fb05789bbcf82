package memory

import (
	"context"
	"sort"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

type experienceRepo struct {
	s *Store
}

func (r *experienceRepo) list(match func(domain.Experience) bool) []domain.Experience {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Experience, 0, len(r.s.experiences))
	for _, e := range r.s.experiences {
		if match(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate.Time) })
	return out
}

func (r *experienceRepo) ListByOwner(_ context.Context, userID string) ([]domain.Experience, error) {
	return r.list(func(e domain.Experience) bool { return e.UserID == userID }), nil
}

func (r *experienceRepo) ListAll(_ context.Context) ([]domain.Experience, error) {
	return r.list(func(domain.Experience) bool { return true }), nil
}

func (r *experienceRepo) Create(_ context.Context, exp *domain.Experience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	exp.ID = uuid.NewString()
	now := time.Now().UTC()
	exp.CreatedAt = now
	exp.UpdatedAt = now
	r.s.experiences[exp.ID] = *exp
	return nil
}

func (r *experienceRepo) Update(_ context.Context, exp *domain.Experience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.experiences[exp.ID]
	if !ok || existing.UserID != exp.UserID {
		return nil
	}
	exp.CreatedAt = existing.CreatedAt
	r.s.experiences[exp.ID] = *exp
	return nil
}

func (r *experienceRepo) Delete(_ context.Context, id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if e, ok := r.s.experiences[id]; ok && e.UserID == userID {
		delete(r.s.experiences, id)
	}
	return nil
}
