package memory

import (
	"context"
	"sort"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

type projectRepo struct {
	s *Store
}

func copyProject(p domain.Project) domain.Project {
	p.Platforms = cloneStrings(p.Platforms)
	if p.Screenshots != nil {
		p.Screenshots = append([]domain.Screenshot(nil), p.Screenshots...)
	}
	return p
}

func (r *projectRepo) list(match func(domain.Project) bool) []domain.Project {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		if match(p) {
			out = append(out, copyProject(p))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *projectRepo) ListByOwner(_ context.Context, userID string) ([]domain.Project, error) {
	return r.list(func(p domain.Project) bool { return p.UserID == userID }), nil
}

func (r *projectRepo) ListAll(_ context.Context) ([]domain.Project, error) {
	return r.list(func(domain.Project) bool { return true }), nil
}

func (r *projectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p = copyProject(p)
	return &p, nil
}

func (r *projectRepo) Create(_ context.Context, project *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	project.ID = uuid.NewString()
	now := time.Now().UTC()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = project.CreatedAt
	r.s.projects[project.ID] = copyProject(*project)
	return nil
}

func (r *projectRepo) Update(_ context.Context, project *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.projects[project.ID]
	if !ok || existing.UserID != project.UserID {
		return nil
	}
	project.CreatedAt = existing.CreatedAt
	r.s.projects[project.ID] = copyProject(*project)
	return nil
}

func (r *projectRepo) Delete(_ context.Context, id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p, ok := r.s.projects[id]; ok && p.UserID == userID {
		delete(r.s.projects, id)
	}
	return nil
}
