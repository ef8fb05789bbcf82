package postgres

import (
	"context"

	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type aboutRepo struct {
	db *pgxpool.Pool
}

func NewAboutRepository(db *pgxpool.Pool) domain.AboutRepository {
	return &aboutRepo{db: db}
}

const aboutColumns = `id, user_id, title, content, image_url, created_at, updated_at`

func (r *aboutRepo) get(ctx context.Context, query string, args ...interface{}) (*domain.AboutSection, error) {
	var a domain.AboutSection
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.UserID, &a.Title, &a.Content, &a.ImageURL, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *aboutRepo) GetByOwner(ctx context.Context, userID string) (*domain.AboutSection, error) {
	return r.get(ctx, `SELECT `+aboutColumns+` FROM about_section WHERE user_id = $1 ORDER BY created_at LIMIT 1`, userID)
}

func (r *aboutRepo) GetFirst(ctx context.Context) (*domain.AboutSection, error) {
	return r.get(ctx, `SELECT `+aboutColumns+` FROM about_section ORDER BY created_at LIMIT 1`)
}

func (r *aboutRepo) Create(ctx context.Context, about *domain.AboutSection) error {
	query := `INSERT INTO about_section (user_id, title, content, image_url)
              VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, about.UserID, about.Title, about.Content, about.ImageURL).
		Scan(&about.ID, &about.CreatedAt, &about.UpdatedAt)
}

func (r *aboutRepo) Update(ctx context.Context, about *domain.AboutSection) error {
	query := `UPDATE about_section SET title = $1, content = $2, image_url = $3, updated_at = $4
              WHERE id = $5 AND user_id = $6`
	_, err := r.db.Exec(ctx, query, about.Title, about.Content, about.ImageURL, about.UpdatedAt, about.ID, about.UserID)
	return err
}
