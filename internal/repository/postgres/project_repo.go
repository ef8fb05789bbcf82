package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

const projectColumns = `id, user_id, title, description, category, image_url, platform, video_url, download_url, screenshots, featured, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var platforms pq.StringArray
	var screenshots []byte
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Description, &p.Category, &p.ImageURL,
		&platforms, &p.VideoURL, &p.DownloadURL, &screenshots, &p.Featured,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Platforms = []string(platforms)
	if len(screenshots) > 0 {
		if err := json.Unmarshal(screenshots, &p.Screenshots); err != nil {
			return nil, fmt.Errorf("decode screenshots for project %s: %w", p.ID, err)
		}
	}
	return &p, nil
}

func screenshotsArg(s []domain.Screenshot) (string, error) {
	if s == nil {
		s = []domain.Screenshot{}
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func platformsArg(p []string) interface{} {
	if p == nil {
		p = []string{}
	}
	return pq.Array(p)
}

func (r *projectRepo) query(ctx context.Context, sql string, args ...interface{}) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *projectRepo) ListByOwner(ctx context.Context, userID string) ([]domain.Project, error) {
	return r.query(ctx, `SELECT `+projectColumns+` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *projectRepo) ListAll(ctx context.Context) ([]domain.Project, error) {
	return r.query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	p, err := scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	screenshots, err := screenshotsArg(project.Screenshots)
	if err != nil {
		return err
	}
	query := `INSERT INTO projects (user_id, title, description, category, image_url, platform, video_url, download_url, screenshots, featured)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10) RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		project.UserID, project.Title, project.Description, project.Category, project.ImageURL,
		platformsArg(project.Platforms), project.VideoURL, project.DownloadURL, screenshots, project.Featured,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	if !isUUID(project.ID) {
		return nil
	}
	screenshots, err := screenshotsArg(project.Screenshots)
	if err != nil {
		return err
	}
	query := `UPDATE projects
              SET title = $1, description = $2, category = $3, image_url = $4, platform = $5,
                  video_url = $6, download_url = $7, screenshots = $8::jsonb, featured = $9, updated_at = $10
              WHERE id = $11 AND user_id = $12`
	_, err = r.db.Exec(ctx, query,
		project.Title, project.Description, project.Category, project.ImageURL, platformsArg(project.Platforms),
		project.VideoURL, project.DownloadURL, screenshots, project.Featured, project.UpdatedAt,
		project.ID, project.UserID,
	)
	return err
}

func (r *projectRepo) Delete(ctx context.Context, id, userID string) error {
	if !isUUID(id) {
		return nil
	}
	_, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
