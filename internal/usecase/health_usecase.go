package usecase

import (
	"context"
	"time"
)

// Pinger is any dependency that can report its reachability.
type Pinger func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	checks map[string]Pinger
}

// NewHealthUsecase builds a checker over named checks. A nil check reports
// "disabled" and does not affect overall health.
func NewHealthUsecase(checks map[string]Pinger) HealthUsecase {
	return &healthUsecase{checks: checks}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok"}
	healthy := true
	for name, ping := range u.checks {
		switch {
		case ping == nil:
			status[name] = "disabled"
		case ping(ctx) != nil:
			status[name] = "down"
			healthy = false
		default:
			status[name] = "up"
		}
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
