package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/auth"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/security"

	"github.com/go-playground/validator/v10"
)

const invalidCredentials = "Wrong Password Or Account Not Found!"

// TokenVerifier checks an access token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthOptions wires the GoTrue password grant.
type AuthOptions struct {
	SupabaseURL string
	AnonKey     string
	SiteOwnerID string
	HTTPClient  *http.Client
}

type authUsecase struct {
	opts     AuthOptions
	verifier TokenVerifier
	validate *validator.Validate
	secLog   *security.SecurityLogger
}

func NewAuthUsecase(opts AuthOptions, verifier TokenVerifier, validate *validator.Validate, secLog *security.SecurityLogger) domain.AuthUsecase {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if secLog == nil {
		secLog = security.DefaultLogger()
	}
	opts.SupabaseURL = strings.TrimRight(opts.SupabaseURL, "/")
	return &authUsecase{opts: opts, verifier: verifier, validate: validate, secLog: secLog}
}

type goTrueSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type goTrueError struct {
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

func (u *authUsecase) Login(ctx context.Context, req *domain.LoginRequest) (*domain.Session, error) {
	if err := validate(u.validate, req); err != nil {
		return nil, err
	}
	if u.opts.SupabaseURL == "" {
		return nil, apperror.Unavailable("Login service unavailable", fmt.Errorf("SUPABASE_URL is not configured"))
	}

	body, err := json.Marshal(map[string]string{"email": req.Email, "password": req.Password})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	loginURL := fmt.Sprintf("%s/auth/v1/token?grant_type=password", u.opts.SupabaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", u.opts.AnonKey)
	if req.ClientIP != "" {
		httpReq.Header.Set("X-Forwarded-For", req.ClientIP)
	}
	if req.UserAgent != "" {
		httpReq.Header.Set("User-Agent", req.UserAgent)
	}

	resp, err := u.opts.HTTPClient.Do(httpReq)
	if err != nil {
		logger.Log.Error("GoTrue login request failed", "error", err)
		return nil, apperror.Unavailable("Login service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp goTrueError
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		reason := errResp.Msg
		if reason == "" {
			reason = errResp.ErrorDescription
		}
		u.secLog.LogLoginFailed(ctx, req.Email, req.ClientIP, req.UserAgent, req.RequestID, fmt.Sprintf("status %d: %s", resp.StatusCode, reason))

		msg := invalidCredentials
		if reason == "Email not confirmed" {
			msg = reason
		}
		return nil, apperror.Unauthorized(msg)
	}

	var session goTrueSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to parse login response", err)
	}

	claims, err := u.verifier.Verify(session.AccessToken)
	if err != nil {
		u.secLog.LogLoginFailed(ctx, req.Email, req.ClientIP, req.UserAgent, req.RequestID, "issued token failed verification: "+err.Error())
		return nil, apperror.Unauthorized(invalidCredentials)
	}
	if u.opts.SiteOwnerID != "" && claims.Subject != u.opts.SiteOwnerID {
		u.secLog.LogLoginFailed(ctx, req.Email, req.ClientIP, req.UserAgent, req.RequestID, "not the site owner")
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	email := claims.Email
	if email == "" {
		email = session.User.Email
	}
	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventLoginSuccess,
		SubjectType:  "user_id",
		SubjectValue: claims.Subject,
		IP:           req.ClientIP,
		UserAgent:    req.UserAgent,
		RequestID:    req.RequestID,
	})
	return &domain.Session{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		User:         domain.Principal{ID: claims.Subject, Email: email},
	}, nil
}

func (u *authUsecase) CurrentPrincipal(ctx context.Context) (*domain.Principal, error) {
	p, ok := domain.PrincipalFrom(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return &p, nil
}
