package usecase

import (
	"context"
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// RequireOwner returns the authenticated owner id. Every owner-scoped
// operation calls it before touching validation or storage.
func RequireOwner(ctx context.Context) (string, error) {
	p, ok := domain.PrincipalFrom(ctx)
	if !ok {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return p.ID, nil
}

// sectionCache is the write side of the public read cache.
type sectionCache interface {
	Invalidate(sections ...string)
}

type noopCache struct{}

func (noopCache) Invalidate(...string) {}

func cacheOrNoop(c sectionCache) sectionCache {
	if c == nil {
		return noopCache{}
	}
	return c
}

func validate(v *validator.Validate, input interface{}) error {
	if err := v.Struct(input); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}
	return nil
}

// optionalString trims s and maps blanks to nil.
func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
