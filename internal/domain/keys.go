package domain

import "context"

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
)

// Principal is the authenticated owner resolved from a GoTrue session.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// WithPrincipal stores p on ctx under the same keys the auth middleware uses.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, KeyUserID, p.ID)
	return context.WithValue(ctx, KeyUserEmail, p.Email)
}

// PrincipalFrom returns the principal on ctx, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	id, ok := ctx.Value(KeyUserID).(string)
	if !ok || id == "" {
		return Principal{}, false
	}
	email, _ := ctx.Value(KeyUserEmail).(string)
	return Principal{ID: id, Email: email}, true
}
