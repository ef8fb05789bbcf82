package postgres

import (
	"context"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

const skillColumns = `id, user_id, skill_name, category, level, created_at, updated_at`

func (r *skillRepo) query(ctx context.Context, sql string, args ...interface{}) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.SkillName, &s.Category, &s.Level, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) ListByOwner(ctx context.Context, userID string) ([]domain.Skill, error) {
	return r.query(ctx, `SELECT `+skillColumns+` FROM skill_levels WHERE user_id = $1 ORDER BY category, skill_name`, userID)
}

func (r *skillRepo) ListAll(ctx context.Context) ([]domain.Skill, error) {
	return r.query(ctx, `SELECT `+skillColumns+` FROM skill_levels ORDER BY category, skill_name`)
}

func (r *skillRepo) FindByName(ctx context.Context, userID, skillName string) (*domain.Skill, error) {
	var s domain.Skill
	err := r.db.QueryRow(ctx,
		`SELECT `+skillColumns+` FROM skill_levels WHERE user_id = $1 AND skill_name = $2 LIMIT 1`,
		userID, skillName,
	).Scan(&s.ID, &s.UserID, &s.SkillName, &s.Category, &s.Level, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	query := `INSERT INTO skill_levels (user_id, skill_name, category, level)
              VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, skill.UserID, skill.SkillName, skill.Category, skill.Level).
		Scan(&skill.ID, &skill.CreatedAt, &skill.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *skillRepo) UpdateLevel(ctx context.Context, id string, level int, updatedAt time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE skill_levels SET level = $1, updated_at = $2 WHERE id = $3`, level, updatedAt, id)
	return err
}

func (r *skillRepo) DeleteByName(ctx context.Context, userID, skillName string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM skill_levels WHERE user_id = $1 AND skill_name = $2`, userID, skillName)
	return err
}
