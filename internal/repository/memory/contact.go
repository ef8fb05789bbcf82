package memory

import (
	"context"
	"sort"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

type contactRepo struct {
	s *Store
}

func contactMatches(c domain.ContactSubmission, filter domain.ContactFilter) bool {
	switch filter {
	case domain.ContactFilterUnread:
		return !c.Read && !c.Archived
	case domain.ContactFilterArchived:
		return c.Archived
	default:
		return !c.Archived
	}
}

func (r *contactRepo) Create(_ context.Context, submission *domain.ContactSubmission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	submission.ID = uuid.NewString()
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}
	r.s.contacts[submission.ID] = *submission
	return nil
}

func (r *contactRepo) List(_ context.Context, filter domain.ContactFilter) ([]domain.ContactSubmission, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.ContactSubmission, 0, len(r.s.contacts))
	for _, c := range r.s.contacts {
		if contactMatches(c, filter) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *contactRepo) Counts(_ context.Context) (domain.ContactCounts, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var counts domain.ContactCounts
	for _, c := range r.s.contacts {
		if contactMatches(c, domain.ContactFilterAll) {
			counts.All++
		}
		if contactMatches(c, domain.ContactFilterUnread) {
			counts.Unread++
		}
		if contactMatches(c, domain.ContactFilterArchived) {
			counts.Archived++
		}
	}
	return counts, nil
}

func (r *contactRepo) update(id string, fn func(*domain.ContactSubmission)) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c, ok := r.s.contacts[id]; ok {
		fn(&c)
		r.s.contacts[id] = c
	}
}

func (r *contactRepo) MarkRead(_ context.Context, id string) error {
	r.update(id, func(c *domain.ContactSubmission) { c.Read = true })
	return nil
}

func (r *contactRepo) SetArchived(_ context.Context, id string, archived bool) error {
	r.update(id, func(c *domain.ContactSubmission) { c.Archived = archived })
	return nil
}

func (r *contactRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.contacts, id)
	return nil
}
