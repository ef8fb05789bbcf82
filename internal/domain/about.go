package domain

import (
	"context"
	"time"
)

// AboutSection is the owner's single biography block.
type AboutSection struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AboutInput struct {
	Title    string  `json:"title" validate:"required,not_blank,max=200"`
	Content  string  `json:"content" validate:"required,not_blank"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

type AboutRepository interface {
	// GetByOwner returns ErrNotFound when the owner has no row yet.
	GetByOwner(ctx context.Context, userID string) (*AboutSection, error)
	GetFirst(ctx context.Context) (*AboutSection, error)
	Create(ctx context.Context, about *AboutSection) error
	Update(ctx context.Context, about *AboutSection) error
}

type AboutUsecase interface {
	// GetAboutSection returns (nil, nil) when nothing has been written yet.
	GetAboutSection(ctx context.Context) (*AboutSection, error)
	UpdateAboutSection(ctx context.Context, input *AboutInput) (*AboutSection, error)
}
