package domain

import (
	"context"
	"time"
)

type Experience struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Location    *string   `json:"location"`
	StartDate   Date      `json:"start_date"`
	EndDate     *Date     `json:"end_date"`
	Current     bool      `json:"current"`
	Description *string   `json:"description"`
	CompanyLogo *string   `json:"company_logo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ExperienceInput struct {
	Company     string  `json:"company" validate:"required,not_blank,max=200"`
	Role        string  `json:"role" validate:"required,not_blank,max=200"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	StartDate   *Date   `json:"start_date" validate:"required"`
	EndDate     *Date   `json:"end_date"`
	Current     bool    `json:"current"`
	Description *string `json:"description"`
	CompanyLogo *string `json:"company_logo" validate:"omitempty,url"`
}

type ExperienceRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]Experience, error)
	ListAll(ctx context.Context) ([]Experience, error)
	Create(ctx context.Context, exp *Experience) error
	Update(ctx context.Context, exp *Experience) error
	Delete(ctx context.Context, id, userID string) error
}

type ExperienceUsecase interface {
	ListExperiences(ctx context.Context) ([]Experience, error)
	CreateExperience(ctx context.Context, input *ExperienceInput) (*Experience, error)
	UpdateExperience(ctx context.Context, id string, input *ExperienceInput) error
	DeleteExperience(ctx context.Context, id string) error
}
