package validation

import (
	"reflect"
	"strings"

	"portfolio-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the portfolio-specific tags registered.
func New() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("skill_category", oneOfList(domain.SkillCategories))
	_ = v.RegisterValidation("project_category", oneOfList(domain.ProjectCategories))
	_ = v.RegisterValidation("not_blank", notBlank)

	return v
}

func oneOfList(allowed []string) validator.Func {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		_, ok := set[fl.Field().String()]
		return ok
	}
}

func notBlank(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(fl.Field().String()) != ""
}
