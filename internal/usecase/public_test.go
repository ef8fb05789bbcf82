package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/memory"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend unavailable")

type brokenCerts struct{ domain.CertificationRepository }

func (brokenCerts) ListAll(context.Context) ([]domain.Certification, error) { return nil, errBackend }

type brokenAbout struct{ domain.AboutRepository }

func (brokenAbout) GetFirst(context.Context) (*domain.AboutSection, error) { return nil, errBackend }

type brokenExperiences struct{ domain.ExperienceRepository }

func (brokenExperiences) ListAll(context.Context) ([]domain.Experience, error) { return nil, errBackend }

func TestPublicReadsDegrade(t *testing.T) {
	projects := new(MockProjectRepo)
	skills := new(MockSkillRepo)
	projects.On("ListAll", mock.Anything).Return(nil, errBackend)
	projects.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)
	skills.On("ListAll", mock.Anything).Return(nil, errBackend)

	uc := usecase.NewPublicUsecase(usecase.PublicRepositories{
		Projects:       projects,
		About:          brokenAbout{},
		Skills:         skills,
		Certifications: brokenCerts{},
		Experiences:    brokenExperiences{},
	}, nil)
	ctx := context.Background()

	t.Run("Should return an empty project list with the error", func(t *testing.T) {
		got, err := uc.Projects(ctx)
		assert.ErrorIs(t, err, errBackend)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should return an empty experience list with the error", func(t *testing.T) {
		got, err := uc.Experiences(ctx)
		assert.ErrorIs(t, err, errBackend)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should swallow certification, skill and about failures", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.Equal(t, []domain.Certification{}, uc.Certifications(ctx))
			assert.Equal(t, []domain.Skill{}, uc.Skills(ctx))
			assert.Nil(t, uc.About(ctx))
		})
	})

	t.Run("Should map a missing project to 404", func(t *testing.T) {
		_, err := uc.Project(ctx, "missing")
		assert.True(t, apperror.HasCode(err, http.StatusNotFound))
	})
}

func TestPublicProjection(t *testing.T) {
	store := memory.NewStore()
	readCache := cache.New(time.Minute)
	uc := usecase.NewPublicUsecase(usecase.PublicRepositories{
		Projects:       store.Projects(),
		About:          store.About(),
		Skills:         store.Skills(),
		Certifications: store.Certifications(),
		Experiences:    store.Experiences(),
	}, readCache)

	p := &domain.Project{UserID: "owner-1", Title: "Orbital", Description: "d", Category: domain.ProjectCategoryXR}
	require.NoError(t, store.Projects().Create(context.Background(), p))

	got, err := uc.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.PlaceholderImage, got[0].Image)
	assert.Equal(t, "/projects/"+p.ID, got[0].Link)
	assert.Equal(t, []string{}, got[0].Platforms)

	one, err := uc.Project(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Orbital", one.Title)

	assert.Nil(t, uc.About(context.Background()))
}
