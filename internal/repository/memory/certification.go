package memory

import (
	"context"
	"sort"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

type certificationRepo struct {
	s *Store
}

// issued_date DESC NULLS LAST, then created_at DESC
func certLess(a, b domain.Certification) bool {
	switch {
	case a.IssuedDate != nil && b.IssuedDate == nil:
		return true
	case a.IssuedDate == nil && b.IssuedDate != nil:
		return false
	case a.IssuedDate != nil && !a.IssuedDate.Equal(b.IssuedDate.Time):
		return a.IssuedDate.After(b.IssuedDate.Time)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (r *certificationRepo) list(match func(domain.Certification) bool) []domain.Certification {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Certification, 0, len(r.s.certifications))
	for _, c := range r.s.certifications {
		if match(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return certLess(out[i], out[j]) })
	return out
}

func (r *certificationRepo) ListByOwner(_ context.Context, userID string) ([]domain.Certification, error) {
	return r.list(func(c domain.Certification) bool { return c.UserID == userID }), nil
}

func (r *certificationRepo) ListAll(_ context.Context) ([]domain.Certification, error) {
	return r.list(func(domain.Certification) bool { return true }), nil
}

func (r *certificationRepo) Create(_ context.Context, cert *domain.Certification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cert.ID = uuid.NewString()
	cert.CreatedAt = time.Now().UTC()
	r.s.certifications[cert.ID] = *cert
	return nil
}

func (r *certificationRepo) Update(_ context.Context, cert *domain.Certification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.certifications[cert.ID]
	if !ok || existing.UserID != cert.UserID {
		return nil
	}
	cert.CreatedAt = existing.CreatedAt
	r.s.certifications[cert.ID] = *cert
	return nil
}

func (r *certificationRepo) Delete(_ context.Context, id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c, ok := r.s.certifications[id]; ok && c.UserID == userID {
		delete(r.s.certifications, id)
	}
	return nil
}
