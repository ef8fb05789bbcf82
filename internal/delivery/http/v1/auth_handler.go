package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC       domain.AuthUsecase
	secureCookie bool
}

func NewAuthHandler(public, admin *gin.RouterGroup, authUC domain.AuthUsecase, secureCookie bool, loginLimit gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC, secureCookie: secureCookie}

	authGroup := public.Group("/auth")
	{
		authGroup.POST("/login", loginLimit, handler.Login)
		authGroup.POST("/logout", handler.Logout)
	}
	admin.GET("/me", handler.Me)
}

// Login godoc
// @Summary      Owner login
// @Description  Exchanges email and password with GoTrue and sets the auth_token cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.Response{data=domain.Session}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	req.ClientIP = c.ClientIP()
	req.UserAgent = c.Request.UserAgent()
	req.RequestID = c.GetString(middleware.RequestIDKey)

	session, err := h.authUC.Login(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	maxAge := session.ExpiresIn
	if maxAge <= 0 {
		maxAge = 3600
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, session.AccessToken, maxAge, "/", "", h.secureCookie, true)
	csrfToken, err := middleware.IssueCSRFCookie(c, h.secureCookie)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token":      session.AccessToken,
		"expires_in": session.ExpiresIn,
		"user":       session.User,
		"csrf_token": csrfToken,
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Clears the session cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.secureCookie, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Current owner
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.Principal}
// @Failure      401  {object}  response.Response
// @Router       /admin/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, err := h.authUC.CurrentPrincipal(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User details", principal)
}
