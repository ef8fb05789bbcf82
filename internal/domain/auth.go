package domain

import "context"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`

	ClientIP  string `json:"-"`
	UserAgent string `json:"-"`
	RequestID string `json:"-"`
}

// Session is the result of a successful password exchange with GoTrue.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresIn    int       `json:"expires_in"`
	User         Principal `json:"user"`
}

type AuthUsecase interface {
	Login(ctx context.Context, req *LoginRequest) (*Session, error)
	CurrentPrincipal(ctx context.Context) (*Principal, error)
}
