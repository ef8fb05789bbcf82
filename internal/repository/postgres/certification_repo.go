package postgres

import (
	"context"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type certificationRepo struct {
	db *pgxpool.Pool
}

func NewCertificationRepository(db *pgxpool.Pool) domain.CertificationRepository {
	return &certificationRepo{db: db}
}

const certificationSelect = `SELECT id, user_id, title, issuer, issued_date, credential_url, created_at FROM certifications`
const certificationOrder = ` ORDER BY issued_date DESC NULLS LAST, created_at DESC`

func (r *certificationRepo) query(ctx context.Context, sql string, args ...interface{}) ([]domain.Certification, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certs := []domain.Certification{}
	for rows.Next() {
		var c domain.Certification
		var issued *time.Time
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.Issuer, &issued, &c.CredentialURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.IssuedDate = scanDate(issued)
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

func (r *certificationRepo) ListByOwner(ctx context.Context, userID string) ([]domain.Certification, error) {
	return r.query(ctx, certificationSelect+` WHERE user_id = $1`+certificationOrder, userID)
}

func (r *certificationRepo) ListAll(ctx context.Context) ([]domain.Certification, error) {
	return r.query(ctx, certificationSelect+certificationOrder)
}

func (r *certificationRepo) Create(ctx context.Context, cert *domain.Certification) error {
	query := `INSERT INTO certifications (user_id, title, issuer, issued_date, credential_url)
              VALUES ($1, $2, $3, $4::date, $5) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query, cert.UserID, cert.Title, cert.Issuer, dateArg(cert.IssuedDate), cert.CredentialURL).
		Scan(&cert.ID, &cert.CreatedAt)
}

func (r *certificationRepo) Update(ctx context.Context, cert *domain.Certification) error {
	if !isUUID(cert.ID) {
		return nil
	}
	query := `UPDATE certifications SET title = $1, issuer = $2, issued_date = $3::date, credential_url = $4
              WHERE id = $5 AND user_id = $6`
	_, err := r.db.Exec(ctx, query, cert.Title, cert.Issuer, dateArg(cert.IssuedDate), cert.CredentialURL, cert.ID, cert.UserID)
	return err
}

func (r *certificationRepo) Delete(ctx context.Context, id, userID string) error {
	if !isUUID(id) {
		return nil
	}
	_, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
