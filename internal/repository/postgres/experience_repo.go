package postgres

import (
	"context"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

const experienceSelect = `SELECT id, user_id, company, role, location, start_date, end_date, current, description, company_logo, created_at, updated_at FROM experiences`

func (r *experienceRepo) query(ctx context.Context, sql string, args ...interface{}) ([]domain.Experience, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Experience{}
	for rows.Next() {
		var e domain.Experience
		var start time.Time
		var end *time.Time
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Company, &e.Role, &e.Location, &start, &end, &e.Current,
			&e.Description, &e.CompanyLogo, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		e.StartDate = domain.NewDate(start)
		e.EndDate = scanDate(end)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *experienceRepo) ListByOwner(ctx context.Context, userID string) ([]domain.Experience, error) {
	return r.query(ctx, experienceSelect+` WHERE user_id = $1 ORDER BY start_date DESC`, userID)
}

func (r *experienceRepo) ListAll(ctx context.Context) ([]domain.Experience, error) {
	return r.query(ctx, experienceSelect+` ORDER BY start_date DESC`)
}

func (r *experienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experiences (user_id, company, role, location, start_date, end_date, current, description, company_logo)
              VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8, $9) RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		e.UserID, e.Company, e.Role, e.Location, e.StartDate.String(), dateArg(e.EndDate), e.Current, e.Description, e.CompanyLogo,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *experienceRepo) Update(ctx context.Context, e *domain.Experience) error {
	if !isUUID(e.ID) {
		return nil
	}
	query := `UPDATE experiences
              SET company = $1, role = $2, location = $3, start_date = $4::date, end_date = $5::date,
                  current = $6, description = $7, company_logo = $8, updated_at = $9
              WHERE id = $10 AND user_id = $11`
	_, err := r.db.Exec(ctx, query,
		e.Company, e.Role, e.Location, e.StartDate.String(), dateArg(e.EndDate),
		e.Current, e.Description, e.CompanyLogo, e.UpdatedAt, e.ID, e.UserID,
	)
	return err
}

func (r *experienceRepo) Delete(ctx context.Context, id, userID string) error {
	if !isUUID(id) {
		return nil
	}
	_, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
