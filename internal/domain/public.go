package domain

import "context"

// PublicUsecase serves the anonymous read endpoints. Every method returns a
// usable default alongside any error so callers never render nil.
type PublicUsecase interface {
	Projects(ctx context.Context) ([]PublicProject, error)
	Project(ctx context.Context, id string) (*PublicProject, error)
	Certifications(ctx context.Context) []Certification
	Skills(ctx context.Context) []Skill
	About(ctx context.Context) *AboutSection
	Experiences(ctx context.Context) ([]Experience, error)
}
