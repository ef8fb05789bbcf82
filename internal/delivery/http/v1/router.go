package v1

import (
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC          domain.AuthUsecase
	PublicUC        domain.PublicUsecase
	ProjectUC       domain.ProjectUsecase
	AboutUC         domain.AboutUsecase
	SkillUC         domain.SkillUsecase
	SkillSliderUC   domain.SkillSliderUsecase
	CertificationUC domain.CertificationUsecase
	ExperienceUC    domain.ExperienceUsecase
	ContactUC       domain.ContactUsecase
	UploadUC        domain.UploadUsecase
	HealthUC        usecase.HealthUsecase
	Guard           *middleware.SessionGuard
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	production := cfg.IsProduction()
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes + 1<<20

	// CORS must be first so preflights never reach the limiter.
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, !production))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(production))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	// Browser entry point for the dashboard.
	r.GET("/admin", deps.Guard.PageRedirect(cfg.FrontendURL+"/login", cfg.FrontendURL+"/admin"))

	v1 := r.Group("/v1")
	v1.GET("/health", healthHandler(deps.HealthUC))
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	NewPublicHandler(v1, deps.PublicUC)

	// Owner routes
	admin := v1.Group("/admin")
	admin.Use(deps.Guard.Authenticate(), middleware.CSRFMiddleware(production))
	{
		NewAuthHandler(v1, admin, deps.AuthUC, production,
			middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window)))
		NewContactHandler(v1, admin, deps.ContactUC,
			middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(cfg.RateLimitContactLimit, window)))
		NewProjectHandler(admin, deps.ProjectUC)
		NewAboutHandler(admin, deps.AboutUC)
		NewSkillHandler(admin, deps.SkillUC, deps.SkillSliderUC)
		NewCertificationHandler(admin, deps.CertificationUC)
		NewExperienceHandler(admin, deps.ExperienceUC)
		NewUploadHandler(admin, deps.UploadUC, cfg.MaxUploadBytes)
	}

	return r
}
