package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/cache"

	"github.com/go-playground/validator/v10"
)

type skillUsecase struct {
	repo     domain.SkillRepository
	cache    sectionCache
	validate *validator.Validate

	// Upserts for one (owner, skill name) run one at a time.
	locks sync.Map // string -> *sync.Mutex
}

func (u *skillUsecase) lockName(ownerID, skillName string) func() {
	v, _ := u.locks.LoadOrStore(ownerID+"\x00"+skillName, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func NewSkillUsecase(repo domain.SkillRepository, readCache sectionCache, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{repo: repo, cache: cacheOrNoop(readCache), validate: validate}
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

// UpdateSkillLevel upserts by (owner, skill name). An existing row keeps its
// category and only its level changes.
func (u *skillUsecase) UpdateSkillLevel(ctx context.Context, skillName string, level int, category string) error {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return err
	}
	if level < domain.MinSkillLevel || level > domain.MaxSkillLevel {
		return apperror.BadRequest("Skill level must be between 0 and 100")
	}
	input := &domain.SkillLevelInput{SkillName: strings.TrimSpace(skillName), Category: category, Level: level}
	if err := validate(u.validate, input); err != nil {
		return err
	}

	unlock := u.lockName(ownerID, input.SkillName)
	defer unlock()

	if err := u.upsertLevel(ctx, ownerID, input); err != nil {
		return err
	}

	u.cache.Invalidate(cache.SectionSkills)
	return nil
}

func (u *skillUsecase) upsertLevel(ctx context.Context, ownerID string, input *domain.SkillLevelInput) error {
	existing, err := u.repo.FindByName(ctx, ownerID, input.SkillName)
	switch {
	case err == nil:
		return u.repo.UpdateLevel(ctx, existing.ID, input.Level, time.Now().UTC())
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	err = u.repo.Create(ctx, &domain.Skill{
		UserID:    ownerID,
		SkillName: input.SkillName,
		Category:  input.Category,
		Level:     input.Level,
	})
	if !errors.Is(err, domain.ErrConflict) {
		return err
	}
	// Another process inserted the row between find and insert.
	existing, err = u.repo.FindByName(ctx, ownerID, input.SkillName)
	if err != nil {
		return err
	}
	return u.repo.UpdateLevel(ctx, existing.ID, input.Level, time.Now().UTC())
}

func (u *skillUsecase) DeleteSkill(ctx context.Context, skillName string) error {
	ownerID, err := RequireOwner(ctx)
	if err != nil {
		return err
	}
	skillName = strings.TrimSpace(skillName)
	unlock := u.lockName(ownerID, skillName)
	defer unlock()

	if err := u.repo.DeleteByName(ctx, ownerID, skillName); err != nil {
		return err
	}
	u.cache.Invalidate(cache.SectionSkills)
	return nil
}
