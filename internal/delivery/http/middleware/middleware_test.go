package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, sub string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": sub + "@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(middleware.RequestIDKey)) })

	t.Run("Should reuse a valid inbound id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, id)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, id, w.Body.String())
		assert.Equal(t, id, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("Should replace a malformed inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "<script>")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Body.String())
		assert.NoError(t, err)
	})
}

func TestSessionGuard(t *testing.T) {
	guard := middleware.NewSessionGuard(auth.NewVerifier(testSecret, nil), "owner-1", nil)

	r := gin.New()
	r.GET("/private", guard.Authenticate(), func(c *gin.Context) {
		p, ok := domain.PrincipalFrom(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, p.ID)
	})
	r.GET("/admin", guard.PageRedirect("/login", "/dashboard"))

	do := func(path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if mutate != nil {
			mutate(req)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Should reject requests without a token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("/private", nil).Code)
	})

	t.Run("Should accept the owner's bearer token", func(t *testing.T) {
		w := do("/private", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+signToken(t, "owner-1"))
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "owner-1", w.Body.String())
	})

	t.Run("Should accept the auth cookie", func(t *testing.T) {
		w := do("/private", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: signToken(t, "owner-1")})
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should treat another user's token as no session", func(t *testing.T) {
		w := do("/private", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+signToken(t, "intruder"))
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject tampered tokens", func(t *testing.T) {
		w := do("/private", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+signToken(t, "owner-1")+"x")
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should redirect pages by session", func(t *testing.T) {
		w := do("/admin", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))

		w = do("/admin", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: signToken(t, "owner-1")})
		})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORSMiddleware([]string{"https://portfolio.example.com"}, false))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://portfolio.example.com")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://portfolio.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = preflight("http://localhost:3000")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCSRFMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CSRFMiddleware(false))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Should issue a cookie on safe requests", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.CSRFTokenCookieName+"=")
	})

	t.Run("Should require a matching header on cookie sessions", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CSRFTokenCookieName, Value: "abc"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)

		req = httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CSRFTokenCookieName, Value: "abc"})
		req.Header.Set(middleware.CSRFTokenHeaderName, "abd")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)

		req = httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CSRFTokenCookieName, Value: "abc"})
		req.Header.Set(middleware.CSRFTokenHeaderName, "abc")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should skip bearer clients", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimitMiddlewareInMemory(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(2, time.Minute)))
	r.POST("/contact", func(c *gin.Context) { c.Status(http.StatusCreated) })

	hit := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, hit("10.0.0.1").Code)
	w := hit("10.0.0.1")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = hit("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusCreated, hit("10.0.0.2").Code)
}

func TestRateLimitDisabled(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(0, time.Minute)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware(true))
	r.GET("/v1/admin/me", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/v1/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/me", nil))
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/swagger/index.html", nil))
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
}
