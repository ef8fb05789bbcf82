package middleware

import (
	"net/http"
	"strings"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/auth"
	"portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthCookieName carries the GoTrue access token for browser sessions.
const AuthCookieName = "auth_token"

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// SessionGuard resolves the site owner from a request.
type SessionGuard struct {
	verifier    TokenVerifier
	siteOwnerID string
	secLog      *security.SecurityLogger
}

// NewSessionGuard builds a guard. When siteOwnerID is set, valid tokens for
// any other user count as no session at all.
func NewSessionGuard(verifier TokenVerifier, siteOwnerID string, secLog *security.SecurityLogger) *SessionGuard {
	if secLog == nil {
		secLog = security.DefaultLogger()
	}
	return &SessionGuard{verifier: verifier, siteOwnerID: siteOwnerID, secLog: secLog}
}

// bearerToken prefers the Authorization header and falls back to the cookie.
func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	cookie, err := c.Cookie(AuthCookieName)
	if err != nil {
		return ""
	}
	return cookie
}

// Resolve returns the principal for the request. reason is set when a
// presented token was rejected.
func (g *SessionGuard) Resolve(c *gin.Context) (principal domain.Principal, ok bool, reason string) {
	token := bearerToken(c)
	if token == "" {
		return domain.Principal{}, false, ""
	}
	claims, err := g.verifier.Verify(token)
	if err != nil {
		return domain.Principal{}, false, "invalid token: " + err.Error()
	}
	if g.siteOwnerID != "" && claims.Subject != g.siteOwnerID {
		return domain.Principal{}, false, "token subject is not the site owner"
	}
	return domain.Principal{ID: claims.Subject, Email: claims.Email}, true, ""
}

func (g *SessionGuard) logRejected(c *gin.Context, reason string) {
	if reason == "" {
		return
	}
	g.secLog.LogUnauthorized(c.Request.Context(), c.ClientIP(), c.Request.UserAgent(), c.GetString(RequestIDKey), c.Request.URL.Path, reason)
}

// Authenticate aborts with 401 unless the request carries the owner's session.
// The principal is stored on the gin context and on the request context.
func (g *SessionGuard) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok, reason := g.Resolve(c)
		if !ok {
			g.logRejected(c, reason)
			response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), principal.ID)
		c.Set(string(domain.KeyUserEmail), principal.Email)
		c.Request = c.Request.WithContext(domain.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// PageRedirect guards a browser page: without a session the visitor is sent
// to loginURL, with one to pageURL.
func (g *SessionGuard) PageRedirect(loginURL, pageURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok, reason := g.Resolve(c); !ok {
			g.logRejected(c, reason)
			c.Redirect(http.StatusFound, loginURL)
			return
		}
		c.Redirect(http.StatusFound, pageURL)
	}
}
