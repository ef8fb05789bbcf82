package usecase

import (
	"context"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/cache"

	"github.com/go-playground/validator/v10"
)

type experienceUsecase struct {
	repo     domain.ExperienceRepository
	cache    sectionCache
	validate *validator.Validate
}

func NewExperienceUsecase(repo domain.ExperienceRepository, readCache sectionCache, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{repo: repo, cache: cacheOrNoop(readCache), validate: validate}
}

func (u *experienceUsecase) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *experienceUsecase) CreateExperience(ctx context.Context, input *domain.ExperienceInput) (*domain.Experience, error) {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	exp, err := u.experienceFromInput(input)
	if err != nil {
		return nil, err
	}
	exp.UserID = ownerID
	if err := u.repo.Create(ctx, exp); err != nil {
		return nil, err
	}
	u.cache.Invalidate(cache.SectionExperiences)
	return exp, nil
}

func (u *experienceUsecase) UpdateExperience(ctx context.Context, id string, input *domain.ExperienceInput) error {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return err
	}
	exp, err := u.experienceFromInput(input)
	if err != nil {
		return err
	}
	exp.ID = id
	exp.UserID = ownerID
	exp.UpdatedAt = time.Now().UTC()
	if err := u.repo.Update(ctx, exp); err != nil {
		return err
	}
	u.cache.Invalidate(cache.SectionExperiences)
	return nil
}

func (u *experienceUsecase) DeleteExperience(ctx context.Context, id string) error {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	u.cache.Invalidate(cache.SectionExperiences)
	return nil
}

// experienceFromInput validates input. A current position never carries an end date.
func (u *experienceUsecase) experienceFromInput(in *domain.ExperienceInput) (*domain.Experience, error) {
	if err := validate(u.validate, in); err != nil {
		return nil, err
	}

	end := in.EndDate
	if in.Current {
		end = nil
	}
	if end != nil && end.Before(in.StartDate.Time) {
		return nil, apperror.BadRequest("End date must not be before start date")
	}

	return &domain.Experience{
		Company:     strings.TrimSpace(in.Company),
		Role:        strings.TrimSpace(in.Role),
		Location:    optionalString(in.Location),
		StartDate:   *in.StartDate,
		EndDate:     end,
		Current:     in.Current,
		Description: optionalString(in.Description),
		CompanyLogo: optionalString(in.CompanyLogo),
	}, nil
}
