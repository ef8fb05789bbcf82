package usecase

import (
	"context"
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/cache"

	"github.com/go-playground/validator/v10"
)

type certificationUsecase struct {
	repo     domain.CertificationRepository
	cache    sectionCache
	validate *validator.Validate
}

func NewCertificationUsecase(repo domain.CertificationRepository, readCache sectionCache, validate *validator.Validate) domain.CertificationUsecase {
	return &certificationUsecase{repo: repo, cache: cacheOrNoop(readCache), validate: validate}
}

func (u *certificationUsecase) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *certificationUsecase) CreateCertification(ctx context.Context, input *domain.CertificationInput) (*domain.Certification, error) {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate(u.validate, input); err != nil {
		return nil, err
	}

	cert := certificationFromInput(input)
	cert.UserID = ownerID
	if err := u.repo.Create(ctx, cert); err != nil {
		return nil, err
	}
	u.cache.Invalidate(cache.SectionCertifications)
	return cert, nil
}

func (u *certificationUsecase) UpdateCertification(ctx context.Context, id string, input *domain.CertificationInput) error {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return err
	}
	if err := validate(u.validate, input); err != nil {
		return err
	}

	cert := certificationFromInput(input)
	cert.ID = id
	cert.UserID = ownerID
	if err := u.repo.Update(ctx, cert); err != nil {
		return err
	}
	u.cache.Invalidate(cache.SectionCertifications)
	return nil
}

func (u *certificationUsecase) DeleteCertification(ctx context.Context, id string) error {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	u.cache.Invalidate(cache.SectionCertifications)
	return nil
}

func certificationFromInput(in *domain.CertificationInput) *domain.Certification {
	return &domain.Certification{
		Title:         strings.TrimSpace(in.Title),
		Issuer:        strings.TrimSpace(in.Issuer),
		IssuedDate:    in.IssuedDate,
		CredentialURL: optionalString(in.CredentialURL),
	}
}
