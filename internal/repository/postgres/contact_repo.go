package postgres

import (
	"context"

	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

var contactFilterClause = map[domain.ContactFilter]string{
	domain.ContactFilterAll:      `archived = FALSE`,
	domain.ContactFilterUnread:   `read = FALSE AND archived = FALSE`,
	domain.ContactFilterArchived: `archived = TRUE`,
}

func (r *contactRepo) Create(ctx context.Context, s *domain.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (name, email, subject, message)
              VALUES ($1, $2, $3, $4) RETURNING id, read, archived, created_at`
	return r.db.QueryRow(ctx, query, s.Name, s.Email, s.Subject, s.Message).
		Scan(&s.ID, &s.Read, &s.Archived, &s.CreatedAt)
}

func (r *contactRepo) List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactSubmission, error) {
	where, ok := contactFilterClause[filter]
	if !ok {
		where = contactFilterClause[domain.ContactFilterAll]
	}
	rows, err := r.db.Query(ctx, `SELECT id, name, email, subject, message, read, archived, created_at
              FROM contact_submissions WHERE `+where+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ContactSubmission{}
	for rows.Next() {
		var s domain.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.Read, &s.Archived, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *contactRepo) Counts(ctx context.Context) (domain.ContactCounts, error) {
	var c domain.ContactCounts
	err := r.db.QueryRow(ctx, `SELECT
              COUNT(*) FILTER (WHERE archived = FALSE),
              COUNT(*) FILTER (WHERE read = FALSE AND archived = FALSE),
              COUNT(*) FILTER (WHERE archived = TRUE)
              FROM contact_submissions`).Scan(&c.All, &c.Unread, &c.Archived)
	return c, err
}

func (r *contactRepo) MarkRead(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}
	_, err := r.db.Exec(ctx, `UPDATE contact_submissions SET read = TRUE WHERE id = $1`, id)
	return err
}

func (r *contactRepo) SetArchived(ctx context.Context, id string, archived bool) error {
	if !isUUID(id) {
		return nil
	}
	_, err := r.db.Exec(ctx, `UPDATE contact_submissions SET archived = $1 WHERE id = $2`, archived, id)
	return err
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}
	_, err := r.db.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	return err
}
