package usecase

import (
	"context"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/cache"

	"github.com/go-playground/validator/v10"
)

type projectUsecase struct {
	repo     domain.ProjectRepository
	cache    sectionCache
	validate *validator.Validate
}

func NewProjectUsecase(repo domain.ProjectRepository, readCache sectionCache, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{repo: repo, cache: cacheOrNoop(readCache), validate: validate}
}

func (u *projectUsecase) ListProjects(ctx context.Context) ([]domain.Project, error) {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *projectUsecase) CreateProject(ctx context.Context, input *domain.ProjectInput) (*domain.Project, error) {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate(u.validate, input); err != nil {
		return nil, err
	}

	project := projectFromInput(input)
	project.UserID = ownerID
	if err := u.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	u.cache.Invalidate(cache.SectionProjects)
	return project, nil
}

func (u *projectUsecase) UpdateProject(ctx context.Context, id string, input *domain.ProjectInput) error {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return err
	}
	if err := validate(u.validate, input); err != nil {
		return err
	}

	project := projectFromInput(input)
	project.ID = id
	project.UserID = ownerID
	project.UpdatedAt = time.Now().UTC()
	if err := u.repo.Update(ctx, project); err != nil {
		return err
	}
	u.cache.Invalidate(cache.SectionProjects)
	return nil
}

func (u *projectUsecase) DeleteProject(ctx context.Context, id string) error {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	u.cache.Invalidate(cache.SectionProjects)
	return nil
}

func projectFromInput(in *domain.ProjectInput) *domain.Project {
	platforms := make([]string, 0, len(in.Platforms))
	for _, p := range in.Platforms {
		if p = strings.TrimSpace(p); p != "" {
			platforms = append(platforms, p)
		}
	}
	screenshots := make([]domain.Screenshot, 0, len(in.Screenshots))
	for _, s := range in.Screenshots {
		s.URL = strings.TrimSpace(s.URL)
		s.Caption = strings.TrimSpace(s.Caption)
		screenshots = append(screenshots, s)
	}
	return &domain.Project{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    optionalString(in.ImageURL),
		Platforms:   platforms,
		VideoURL:    optionalString(in.VideoURL),
		DownloadURL: optionalString(in.DownloadURL),
		Screenshots: screenshots,
		Featured:    in.Featured,
	}
}
