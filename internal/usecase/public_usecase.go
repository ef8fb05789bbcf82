package usecase

import (
	"context"
	"errors"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

// PublicRepositories groups the read sides used by anonymous visitors.
type PublicRepositories struct {
	Projects       domain.ProjectRepository
	About          domain.AboutRepository
	Skills         domain.SkillRepository
	Certifications domain.CertificationRepository
	Experiences    domain.ExperienceRepository
}

type publicUsecase struct {
	repos PublicRepositories
	cache *cache.Store
}

// NewPublicUsecase serves the site owner's content without a session. Reads
// are not partitioned by owner because the deployment has a single owner.
func NewPublicUsecase(repos PublicRepositories, readCache *cache.Store) domain.PublicUsecase {
	return &publicUsecase{repos: repos, cache: readCache}
}

func (u *publicUsecase) Projects(ctx context.Context) ([]domain.PublicProject, error) {
	if v, ok := u.cache.Get(cache.SectionProjects); ok {
		return v.([]domain.PublicProject), nil
	}

	projects, err := u.repos.Projects.ListAll(ctx)
	if err != nil {
		logger.Log.Error("Public projects read failed", "error", err)
		return []domain.PublicProject{}, err
	}

	out := make([]domain.PublicProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Public())
	}
	u.cache.Set(cache.SectionProjects, out)
	return out, nil
}

func (u *publicUsecase) Project(ctx context.Context, id string) (*domain.PublicProject, error) {
	key := cache.SectionProjects + ":" + id
	if v, ok := u.cache.Get(key); ok {
		p := v.(domain.PublicProject)
		return &p, nil
	}

	project, err := u.repos.Projects.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	if err != nil {
		logger.Log.Error("Public project read failed", "project_id", id, "error", err)
		return nil, err
	}

	pub := project.Public()
	u.cache.Set(key, pub)
	return &pub, nil
}

func (u *publicUsecase) Certifications(ctx context.Context) []domain.Certification {
	if v, ok := u.cache.Get(cache.SectionCertifications); ok {
		return v.([]domain.Certification)
	}

	certs, err := u.repos.Certifications.ListAll(ctx)
	if err != nil {
		logger.Log.Error("Public certifications read failed", "error", err)
		return []domain.Certification{}
	}
	if certs == nil {
		certs = []domain.Certification{}
	}
	u.cache.Set(cache.SectionCertifications, certs)
	return certs
}

func (u *publicUsecase) Skills(ctx context.Context) []domain.Skill {
	if v, ok := u.cache.Get(cache.SectionSkills); ok {
		return v.([]domain.Skill)
	}

	skills, err := u.repos.Skills.ListAll(ctx)
	if err != nil {
		logger.Log.Error("Public skills read failed", "error", err)
		return []domain.Skill{}
	}
	if skills == nil {
		skills = []domain.Skill{}
	}
	u.cache.Set(cache.SectionSkills, skills)
	return skills
}

// About returns nil when no section exists or the read fails.
func (u *publicUsecase) About(ctx context.Context) *domain.AboutSection {
	if v, ok := u.cache.Get(cache.SectionAbout); ok {
		return v.(*domain.AboutSection)
	}

	about, err := u.repos.About.GetFirst(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		u.cache.Set(cache.SectionAbout, (*domain.AboutSection)(nil))
		return nil
	}
	if err != nil {
		logger.Log.Error("Public about read failed", "error", err)
		return nil
	}
	u.cache.Set(cache.SectionAbout, about)
	return about
}

func (u *publicUsecase) Experiences(ctx context.Context) ([]domain.Experience, error) {
	if v, ok := u.cache.Get(cache.SectionExperiences); ok {
		return v.([]domain.Experience), nil
	}

	exps, err := u.repos.Experiences.ListAll(ctx)
	if err != nil {
		logger.Log.Error("Public experiences read failed", "error", err)
		return []domain.Experience{}, err
	}
	if exps == nil {
		exps = []domain.Experience{}
	}
	u.cache.Set(cache.SectionExperiences, exps)
	return exps, nil
}
