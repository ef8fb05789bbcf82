package domain

import (
	"context"
	"time"
)

const (
	SkillCategoryGameDev   = "Game Development"
	SkillCategoryXR        = "XR Development"
	SkillCategoryPlatforms = "Platforms"
	SkillCategoryTools     = "Tools"

	MinSkillLevel = 0
	MaxSkillLevel = 100
)

var SkillCategories = []string{SkillCategoryGameDev, SkillCategoryXR, SkillCategoryPlatforms, SkillCategoryTools}

// Skill is a named proficiency level. (UserID, SkillName) is unique.
type Skill struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SkillName string    `json:"skill_name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SkillLevelInput struct {
	SkillName string `json:"skill_name" validate:"required,not_blank,max=100"`
	Category  string `json:"category" validate:"required,skill_category"`
	Level     int    `json:"level" validate:"min=0,max=100"`
}

type SkillRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]Skill, error)
	ListAll(ctx context.Context) ([]Skill, error)
	// FindByName returns ErrNotFound when the owner has no skill with that name.
	FindByName(ctx context.Context, userID, skillName string) (*Skill, error)
	// Create returns ErrConflict when the owner already has a skill with that name.
	Create(ctx context.Context, skill *Skill) error
	UpdateLevel(ctx context.Context, id string, level int, updatedAt time.Time) error
	DeleteByName(ctx context.Context, userID, skillName string) error
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	UpdateSkillLevel(ctx context.Context, skillName string, level int, category string) error
	DeleteSkill(ctx context.Context, skillName string) error
}

// SkillView mirrors the editor's per-key state for HTTP clients.
type SkillView struct {
	SkillName string `json:"skill_name"`
	Category  string `json:"category"`
	Level     int    `json:"level"`
	State     string `json:"state"`
	Error     string `json:"error,omitempty"`
}

// SkillSliderUsecase drives the debounced optimistic editor for the owner.
type SkillSliderUsecase interface {
	Slide(ctx context.Context, input *SkillLevelInput) (*SkillView, error)
	EditorView(ctx context.Context) ([]SkillView, error)
	Close()
}
