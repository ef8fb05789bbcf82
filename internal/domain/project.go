package domain

import (
	"context"
	"time"
)

const (
	ProjectCategoryXR      = "xr"
	ProjectCategoryMobile  = "mobile"
	ProjectCategoryDesktop = "desktop"
	ProjectCategoryGames   = "games"
)

var ProjectCategories = []string{ProjectCategoryXR, ProjectCategoryMobile, ProjectCategoryDesktop, ProjectCategoryGames}

type Screenshot struct {
	URL     string `json:"url" validate:"required,not_blank"`
	Caption string `json:"caption,omitempty"`
}

type Project struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	ImageURL    *string      `json:"image_url"`
	Platforms   []string     `json:"platforms"`
	VideoURL    *string      `json:"video_url"`
	DownloadURL *string      `json:"download_url"`
	Screenshots []Screenshot `json:"screenshots"`
	Featured    bool         `json:"featured"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ProjectInput is the editable part of a project.
type ProjectInput struct {
	Title       string       `json:"title" validate:"required,not_blank,max=200"`
	Description string       `json:"description" validate:"required,not_blank"`
	Category    string       `json:"category" validate:"required,project_category"`
	ImageURL    *string      `json:"image_url" validate:"omitempty,url"`
	Platforms   []string     `json:"platforms" validate:"dive,required,max=50"`
	VideoURL    *string      `json:"video_url" validate:"omitempty,url"`
	DownloadURL *string      `json:"download_url" validate:"omitempty,url"`
	Screenshots []Screenshot `json:"screenshots" validate:"dive"`
	Featured    bool         `json:"featured"`
}

// PublicProject is the projection served to anonymous visitors.
type PublicProject struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Image       string       `json:"image"`
	Platforms   []string     `json:"platforms"`
	Link        string       `json:"link"`
	VideoURL    *string      `json:"video_url,omitempty"`
	DownloadURL *string      `json:"download_url,omitempty"`
	Screenshots []Screenshot `json:"screenshots"`
	Featured    bool         `json:"featured"`
}

const PlaceholderImage = "/placeholder.jpg"

// Public converts p to its public projection.
func (p Project) Public() PublicProject {
	image := PlaceholderImage
	if p.ImageURL != nil && *p.ImageURL != "" {
		image = *p.ImageURL
	}
	platforms := p.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	screenshots := p.Screenshots
	if screenshots == nil {
		screenshots = []Screenshot{}
	}
	return PublicProject{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Image:       image,
		Platforms:   platforms,
		Link:        "/projects/" + p.ID,
		VideoURL:    p.VideoURL,
		DownloadURL: p.DownloadURL,
		Screenshots: screenshots,
		Featured:    p.Featured,
	}
}

type ProjectRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]Project, error)
	ListAll(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, project *Project) error
	// Update and Delete match on id and user_id. No match is not an error.
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id, userID string) error
}

type ProjectUsecase interface {
	ListProjects(ctx context.Context) ([]Project, error)
	CreateProject(ctx context.Context, input *ProjectInput) (*Project, error)
	UpdateProject(ctx context.Context, id string, input *ProjectInput) error
	DeleteProject(ctx context.Context, id string) error
}
