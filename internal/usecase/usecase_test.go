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
	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) ListByOwner(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepo) ListAll(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) ListByOwner(ctx context.Context, userID string) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) ListAll(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) FindByName(ctx context.Context, userID, skillName string) (*domain.Skill, error) {
	args := m.Called(ctx, userID, skillName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) UpdateLevel(ctx context.Context, id string, level int, updatedAt time.Time) error {
	return m.Called(ctx, id, level, updatedAt).Error(0)
}

func (m *MockSkillRepo) DeleteByName(ctx context.Context, userID, skillName string) error {
	return m.Called(ctx, userID, skillName).Error(0)
}

func ownerCtx(id string) context.Context {
	return domain.WithPrincipal(context.Background(), domain.Principal{ID: id, Email: id + "@example.com"})
}

func validProject() *domain.ProjectInput {
	return &domain.ProjectInput{
		Title:       "Orbital",
		Description: "<p>VR puzzle game</p>",
		Category:    domain.ProjectCategoryXR,
		Platforms:   []string{"Quest 3", " ", "PC VR"},
	}
}

func TestProjectGuard(t *testing.T) {
	mockRepo := new(MockProjectRepo)
	uc := usecase.NewProjectUsecase(mockRepo, nil, validation.New())

	t.Run("Should block add project without a session before any repository call", func(t *testing.T) {
		_, err := uc.CreateProject(context.Background(), validProject())
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, http.StatusUnauthorized))
		assert.Contains(t, err.Error(), "User not authenticated")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should block list, update and delete without a session", func(t *testing.T) {
		_, err := uc.ListProjects(context.Background())
		assert.True(t, apperror.HasCode(err, http.StatusUnauthorized))
		assert.True(t, apperror.HasCode(uc.UpdateProject(context.Background(), "p1", validProject()), http.StatusUnauthorized))
		assert.True(t, apperror.HasCode(uc.DeleteProject(context.Background(), "p1"), http.StatusUnauthorized))
		mockRepo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should force UserID from context and drop blank platforms", func(t *testing.T) {
		ctx := ownerCtx("owner-1")
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Project")).Return(nil).Once().Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Project)
			assert.Equal(t, "owner-1", p.UserID)
			assert.Equal(t, []string{"Quest 3", "PC VR"}, p.Platforms)
		})

		project, err := uc.CreateProject(ctx, validProject())
		require.NoError(t, err)
		assert.Equal(t, "Orbital", project.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject unknown category", func(t *testing.T) {
		in := validProject()
		in.Category = "vr"
		_, err := uc.CreateProject(ownerCtx("owner-1"), in)
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
	})

	t.Run("Should scope delete to the caller", func(t *testing.T) {
		ctx := ownerCtx("owner-2")
		mockRepo.On("Delete", ctx, "p1", "owner-2").Return(nil).Once()
		require.NoError(t, uc.DeleteProject(ctx, "p1"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should propagate store errors unchanged", func(t *testing.T) {
		ctx := ownerCtx("owner-3")
		boom := errors.New("connection reset")
		mockRepo.On("ListByOwner", ctx, "owner-3").Return(nil, boom).Once()
		_, err := uc.ListProjects(ctx)
		assert.ErrorIs(t, err, boom)
	})
}

func TestCrossOwnerDeleteIsNoop(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProjectUsecase(store.Projects(), nil, validation.New())

	created, err := uc.CreateProject(ownerCtx("alice"), validProject())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProject(ownerCtx("mallory"), created.ID))

	list, err := uc.ListProjects(ownerCtx("alice"))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestSkillLevelUpsert(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewSkillUsecase(store.Skills(), nil, validation.New())
	ctx := ownerCtx("owner-1")

	t.Run("Should accept the level bounds", func(t *testing.T) {
		require.NoError(t, uc.UpdateSkillLevel(ctx, "Unity", 0, domain.SkillCategoryGameDev))
		require.NoError(t, uc.UpdateSkillLevel(ctx, "Unity", 100, domain.SkillCategoryGameDev))
	})

	t.Run("Should reject levels outside 0..100", func(t *testing.T) {
		for _, level := range []int{-1, 101} {
			err := uc.UpdateSkillLevel(ctx, "Unity", level, domain.SkillCategoryGameDev)
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
		}
	})

	t.Run("Should never duplicate a skill", func(t *testing.T) {
		require.NoError(t, uc.UpdateSkillLevel(ctx, "Blender", 40, domain.SkillCategoryTools))
		require.NoError(t, uc.UpdateSkillLevel(ctx, "Blender", 65, domain.SkillCategoryTools))

		skills, err := uc.ListSkills(ctx)
		require.NoError(t, err)
		var blender []domain.Skill
		for _, s := range skills {
			if s.SkillName == "Blender" {
				blender = append(blender, s)
			}
		}
		require.Len(t, blender, 1)
		assert.Equal(t, 65, blender[0].Level)
	})

	t.Run("Should list by category then name", func(t *testing.T) {
		skills, err := uc.ListSkills(ctx)
		require.NoError(t, err)
		require.Len(t, skills, 2)
		assert.Equal(t, domain.SkillCategoryGameDev, skills[0].Category)
		assert.Equal(t, domain.SkillCategoryTools, skills[1].Category)
	})

	t.Run("Should delete by name", func(t *testing.T) {
		require.NoError(t, uc.DeleteSkill(ctx, "Blender"))
		skills, err := uc.ListSkills(ctx)
		require.NoError(t, err)
		assert.Len(t, skills, 1)
	})
}

func TestSkillLevelRejectsBeforeStore(t *testing.T) {
	mockRepo := new(MockSkillRepo)
	uc := usecase.NewSkillUsecase(mockRepo, nil, validation.New())

	err := uc.UpdateSkillLevel(ownerCtx("owner-1"), "Unity", 101, domain.SkillCategoryGameDev)
	require.Error(t, err)
	mockRepo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything, mock.Anything)

	err = uc.UpdateSkillLevel(context.Background(), "Unity", 50, domain.SkillCategoryGameDev)
	assert.True(t, apperror.HasCode(err, http.StatusUnauthorized))
}

func TestAboutUpsert(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewAboutUsecase(store.About(), nil, validation.New())
	ctx := ownerCtx("owner-1")

	t.Run("Should report absence as nil without error", func(t *testing.T) {
		about, err := uc.GetAboutSection(ctx)
		require.NoError(t, err)
		assert.Nil(t, about)
	})

	t.Run("Should keep a single row after two updates", func(t *testing.T) {
		first, err := uc.UpdateAboutSection(ctx, &domain.AboutInput{Title: "About me", Content: "v1"})
		require.NoError(t, err)
		second, err := uc.UpdateAboutSection(ctx, &domain.AboutInput{Title: "About me", Content: "v2"})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		about, err := uc.GetAboutSection(ctx)
		require.NoError(t, err)
		require.NotNil(t, about)
		assert.Equal(t, "v2", about.Content)

		first2, err := store.About().GetFirst(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first.ID, first2.ID)
	})
}

func TestExperienceDates(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewExperienceUsecase(store.Experiences(), nil, validation.New())
	ctx := ownerCtx("owner-1")

	start := domain.NewDate(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC))
	before := domain.NewDate(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))

	t.Run("Should reject an end date before the start date", func(t *testing.T) {
		_, err := uc.CreateExperience(ctx, &domain.ExperienceInput{Company: "Acme", Role: "Dev", StartDate: &start, EndDate: &before})
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
	})

	t.Run("Should clear the end date for a current role", func(t *testing.T) {
		end := domain.NewDate(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
		exp, err := uc.CreateExperience(ctx, &domain.ExperienceInput{Company: "Acme", Role: "Dev", StartDate: &start, EndDate: &end, Current: true})
		require.NoError(t, err)
		assert.Nil(t, exp.EndDate)
		assert.True(t, exp.Current)
	})

	t.Run("Should require a start date", func(t *testing.T) {
		_, err := uc.CreateExperience(ctx, &domain.ExperienceInput{Company: "Acme", Role: "Dev"})
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
	})
}

func TestWritesInvalidatePublicCache(t *testing.T) {
	store := memory.NewStore()
	readCache := cache.New(time.Minute)
	public := usecase.NewPublicUsecase(usecase.PublicRepositories{
		Projects:       store.Projects(),
		About:          store.About(),
		Skills:         store.Skills(),
		Certifications: store.Certifications(),
		Experiences:    store.Experiences(),
	}, readCache)
	certs := usecase.NewCertificationUsecase(store.Certifications(), readCache, validation.New())

	assert.Empty(t, public.Certifications(context.Background()))

	_, err := certs.CreateCertification(ownerCtx("owner-1"), &domain.CertificationInput{Title: "CKA", Issuer: "CNCF"})
	require.NoError(t, err)

	got := public.Certifications(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "CKA", got[0].Title)
}

func TestBlankRequiredFieldsRejected(t *testing.T) {
	store := memory.NewStore()
	validate := validation.New()
	ctx := ownerCtx("owner-1")
	start := domain.NewDate(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC))

	t.Run("Should reject a whitespace project title", func(t *testing.T) {
		uc := usecase.NewProjectUsecase(store.Projects(), nil, validate)
		in := validProject()
		in.Title = "   "
		_, err := uc.CreateProject(ctx, in)
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
		assert.Contains(t, err.Error(), "Title is required")
	})

	t.Run("Should reject a whitespace certification issuer", func(t *testing.T) {
		uc := usecase.NewCertificationUsecase(store.Certifications(), nil, validate)
		_, err := uc.CreateCertification(ctx, &domain.CertificationInput{Title: "CKA", Issuer: "  \t "})
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
	})

	t.Run("Should reject a whitespace about title", func(t *testing.T) {
		uc := usecase.NewAboutUsecase(store.About(), nil, validate)
		_, err := uc.UpdateAboutSection(ctx, &domain.AboutInput{Title: "  ", Content: "Hello"})
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
	})

	t.Run("Should reject a whitespace experience role", func(t *testing.T) {
		uc := usecase.NewExperienceUsecase(store.Experiences(), nil, validate)
		_, err := uc.CreateExperience(ctx, &domain.ExperienceInput{Company: "Acme", Role: "\n", StartDate: &start})
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
	})

	projects, err := store.Projects().ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
	certs, err := store.Certifications().ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, certs)
	about, err := store.About().GetFirst(context.Background())
	assert.Nil(t, about)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
