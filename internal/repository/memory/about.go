package memory

import (
	"context"
	"sort"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

type aboutRepo struct {
	s *Store
}

func (r *aboutRepo) GetByOwner(_ context.Context, userID string) (*domain.AboutSection, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.about {
		if a.UserID == userID {
			out := a
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *aboutRepo) GetFirst(_ context.Context) (*domain.AboutSection, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := make([]domain.AboutSection, 0, len(r.s.about))
	for _, a := range r.s.about {
		rows = append(rows, a)
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	return &rows[0], nil
}

func (r *aboutRepo) Create(_ context.Context, about *domain.AboutSection) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	about.ID = uuid.NewString()
	now := time.Now().UTC()
	about.CreatedAt = now
	about.UpdatedAt = now
	r.s.about[about.ID] = *about
	return nil
}

func (r *aboutRepo) Update(_ context.Context, about *domain.AboutSection) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.about[about.ID]
	if !ok || existing.UserID != about.UserID {
		return nil
	}
	about.CreatedAt = existing.CreatedAt
	r.s.about[about.ID] = *about
	return nil
}
