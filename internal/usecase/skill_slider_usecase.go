package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/skilleditor"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// skillCommitter persists editor commits through the guarded skill usecase.
type skillCommitter struct {
	skills domain.SkillUsecase
}

func (c skillCommitter) Commit(ctx context.Context, key skilleditor.Key, level int) error {
	return c.skills.UpdateSkillLevel(ctx, key.Name, level, key.Category)
}

func (c skillCommitter) Reload(ctx context.Context) (map[skilleditor.Key]int, error) {
	list, err := c.skills.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[skilleditor.Key]int, len(list))
	for _, s := range list {
		out[skilleditor.Key{Category: s.Category, Name: s.SkillName}] = s.Level
	}
	return out, nil
}

type skillSliderUsecase struct {
	skills   domain.SkillUsecase
	validate *validator.Validate
	opts     []skilleditor.Option

	mu      sync.Mutex
	editors map[string]*ownerEditor
	closed  bool
}

type ownerEditor struct {
	*skilleditor.Editor
	// loaded is set once a Load has succeeded.
	loaded atomic.Bool
}

// refresh replaces the stored levels with what the store holds now.
func (oe *ownerEditor) refresh(ctx context.Context) error {
	if err := oe.Load(ctx); err != nil {
		return err
	}
	oe.loaded.Store(true)
	return nil
}

// NewSkillSliderUsecase keeps one debounced editor per owner. Commits run
// after the request returns, on a context that carries only the principal.
func NewSkillSliderUsecase(skills domain.SkillUsecase, validate *validator.Validate, debounce time.Duration, opts ...skilleditor.Option) domain.SkillSliderUsecase {
	return &skillSliderUsecase{
		skills:   skills,
		validate: validate,
		opts:     append([]skilleditor.Option{skilleditor.WithDelay(debounce)}, opts...),
		editors:  make(map[string]*ownerEditor),
	}
}

func (u *skillSliderUsecase) editorFor(principal domain.Principal) (*ownerEditor, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return nil, apperror.Unavailable("Skill editor is shutting down", skilleditor.ErrClosed)
	}
	if ed, ok := u.editors[principal.ID]; ok {
		return ed, nil
	}

	ownerID := principal.ID
	opts := append([]skilleditor.Option{
		skilleditor.WithContext(domain.WithPrincipal(context.Background(), principal)),
		skilleditor.WithErrorHandler(func(key skilleditor.Key, err error) {
			logger.Log.Warn("Skill level commit failed", "owner_id", ownerID, "skill", key.String(), "error", err)
		}),
	}, u.opts...)
	ed := &ownerEditor{Editor: skilleditor.New(skillCommitter{skills: u.skills}, opts...)}
	u.editors[ownerID] = ed
	return ed, nil
}

func (u *skillSliderUsecase) Slide(ctx context.Context, input *domain.SkillLevelInput) (*domain.SkillView, error) {
	principal, ok := domain.PrincipalFrom(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	input.SkillName = strings.TrimSpace(input.SkillName)
	if err := validate(u.validate, input); err != nil {
		return nil, err
	}

	ed, err := u.editorFor(principal)
	if err != nil {
		return nil, err
	}
	// A revert needs the stored level, so the first slide waits for a load.
	if !ed.loaded.Load() {
		if err := ed.refresh(ctx); err != nil {
			logger.Log.Warn("Skill editor load failed", "owner_id", principal.ID, "error", err)
			return nil, err
		}
	}
	view, err := ed.Input(skilleditor.Key{Category: input.Category, Name: input.SkillName}, input.Level)
	switch {
	case errors.Is(err, skilleditor.ErrLevelOutOfRange):
		return nil, apperror.BadRequest("Skill level must be between 0 and 100")
	case errors.Is(err, skilleditor.ErrClosed):
		return nil, apperror.Unavailable("Skill editor is shutting down", err)
	case err != nil:
		return nil, err
	}

	sv := toSkillView(view)
	return &sv, nil
}

func (u *skillSliderUsecase) EditorView(ctx context.Context) ([]domain.SkillView, error) {
	principal, ok := domain.PrincipalFrom(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	ed, err := u.editorFor(principal)
	if err != nil {
		return nil, err
	}
	// Skills written or deleted outside the editor show up here.
	if err := ed.refresh(ctx); err != nil {
		return nil, err
	}

	views := ed.Views()
	out := make([]domain.SkillView, 0, len(views))
	for _, v := range views {
		out = append(out, toSkillView(v))
	}
	return out, nil
}

// Close stops every editor and waits for in-flight commits.
func (u *skillSliderUsecase) Close() {
	u.mu.Lock()
	u.closed = true
	editors := make([]*ownerEditor, 0, len(u.editors))
	for _, ed := range u.editors {
		editors = append(editors, ed)
	}
	u.mu.Unlock()

	for _, ed := range editors {
		ed.Close()
	}
}

func toSkillView(v skilleditor.View) domain.SkillView {
	sv := domain.SkillView{
		SkillName: v.Key.Name,
		Category:  v.Key.Category,
		Level:     v.Level,
		State:     v.State.String(),
	}
	if v.Err != nil {
		sv.Error = "Failed to update skill level: " + v.Err.Error()
	}
	return sv
}
