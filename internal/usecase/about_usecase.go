package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/cache"

	"github.com/go-playground/validator/v10"
)

type aboutUsecase struct {
	repo     domain.AboutRepository
	cache    sectionCache
	validate *validator.Validate
}

func NewAboutUsecase(repo domain.AboutRepository, readCache sectionCache, validate *validator.Validate) domain.AboutUsecase {
	return &aboutUsecase{repo: repo, cache: cacheOrNoop(readCache), validate: validate}
}

func (u *aboutUsecase) GetAboutSection(ctx context.Context) (*domain.AboutSection, error) {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	about, err := u.repo.GetByOwner(ctx, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return about, err
}

// UpdateAboutSection updates the owner's row in place, or inserts it the first time.
func (u *aboutUsecase) UpdateAboutSection(ctx context.Context, input *domain.AboutInput) (*domain.AboutSection, error) {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate(u.validate, input); err != nil {
		return nil, err
	}

	existing, err := u.repo.GetByOwner(ctx, ownerID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	about := &domain.AboutSection{
		UserID:   ownerID,
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
		ImageURL: optionalString(input.ImageURL),
	}
	if existing != nil {
		about.ID = existing.ID
		about.CreatedAt = existing.CreatedAt
		about.UpdatedAt = time.Now().UTC()
		err = u.repo.Update(ctx, about)
	} else {
		err = u.repo.Create(ctx, about)
	}
	if err != nil {
		return nil, err
	}

	u.cache.Invalidate(cache.SectionAbout)
	return about, nil
}
