package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	"portfolio-backend/internal/delivery/http/middleware"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/memory"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/auth"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/database"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/security"
	"portfolio-backend/pkg/storage"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repositories struct {
	projects       domain.ProjectRepository
	about          domain.AboutRepository
	skills         domain.SkillRepository
	certifications domain.CertificationRepository
	contacts       domain.ContactRepository
	experiences    domain.ExperienceRepository
}

func postgresRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		projects:       postgres.NewProjectRepository(pool),
		about:          postgres.NewAboutRepository(pool),
		skills:         postgres.NewSkillRepository(pool),
		certifications: postgres.NewCertificationRepository(pool),
		contacts:       postgres.NewContactRepository(pool),
		experiences:    postgres.NewExperienceRepository(pool),
	}
}

func memoryRepositories() repositories {
	store := memory.NewStore()
	return repositories{
		projects:       store.Projects(),
		about:          store.About(),
		skills:         store.Skills(),
		certifications: store.Certifications(),
		contacts:       store.Contacts(),
		experiences:    store.Experiences(),
	}
}

// newObjectStore picks the upload backend. A nil store disables uploads.
func newObjectStore(ctx context.Context, cfg *config.Config) (storage.ObjectStore, error) {
	switch cfg.StorageProvider {
	case "s3":
		return storage.NewS3Store(ctx, storage.S3Config{
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Bucket:          cfg.StorageBucket,
			PublicBaseURL:   cfg.StoragePublicBase,
		})
	default:
		return storage.NewSupabaseStore(cfg.SupabaseUrl, cfg.SupabaseServiceKey, cfg.StorageBucket)
	}
}

// @title           Portfolio Backend API
// @version         1.0
// @description     Public content, contact inbox and owner administration for the portfolio site.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Setup Loggers
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "env", cfg.Environment)
	secLog := security.InitSecurityLogger("portfolio-backend", cfg.Environment)
	defer secLog.Sync()

	ctx := context.Background()

	// 3. Setup Database (in-memory when DATABASE_URL is unset)
	var (
		dbPool *pgxpool.Pool
		repos  repositories
	)
	if cfg.DBUrl != "" {
		if cfg.RunMigrations {
			if err := database.RunMigrations(ctx, cfg.DBUrl, postgres.Migrations()); err != nil {
				logger.Log.Error("Failed to run migrations", "error", err)
				os.Exit(1)
			}
		}
		dbPool, err = database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		repos = postgresRepositories(dbPool)
	} else {
		repos = memoryRepositories()
	}

	// 4. Setup Redis (optional, rate limits fall back to memory)
	if err := redis.Initialize(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil && !errors.Is(err, redis.ErrNotConfigured) {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Object Storage
	objectStore, err := newObjectStore(ctx, cfg)
	if err != nil {
		logger.Log.Warn("Object storage not configured - uploads will be unavailable", "provider", cfg.StorageProvider, "error", err)
		objectStore = nil
	}

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact notifications are disabled")
	}

	// 7. Setup UseCases
	validate := validation.New()
	readCache := cache.New(time.Duration(cfg.PublicCacheTTLSeconds) * time.Second)

	var jwksProvider *auth.Provider
	if cfg.SupabaseUrl != "" {
		jwksProvider = auth.NewProvider(cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json")
	}
	verifier := auth.NewVerifier(cfg.SupabaseJWTSecret, jwksProvider)

	authUC := usecase.NewAuthUsecase(usecase.AuthOptions{
		SupabaseURL: cfg.SupabaseUrl,
		AnonKey:     cfg.SupabaseKey,
		SiteOwnerID: cfg.SiteOwnerID,
	}, verifier, validate, secLog)
	projectUC := usecase.NewProjectUsecase(repos.projects, readCache, validate)
	aboutUC := usecase.NewAboutUsecase(repos.about, readCache, validate)
	skillUC := usecase.NewSkillUsecase(repos.skills, readCache, validate)
	certUC := usecase.NewCertificationUsecase(repos.certifications, readCache, validate)
	expUC := usecase.NewExperienceUsecase(repos.experiences, readCache, validate)
	contactUC := usecase.NewContactUsecase(repos.contacts, emailService, validate)
	publicUC := usecase.NewPublicUsecase(usecase.PublicRepositories{
		Projects:       repos.projects,
		About:          repos.about,
		Skills:         repos.skills,
		Certifications: repos.certifications,
		Experiences:    repos.experiences,
	}, readCache)
	sliderUC := usecase.NewSkillSliderUsecase(skillUC, validate, time.Duration(cfg.SkillDebounceMillis)*time.Millisecond)
	uploadLimiter := security.NewUploadLimiter(cfg.UploadsPerMinute, cfg.UploadsPerDay)
	uploadUC := usecase.NewUploadUsecase(objectStore, uploadLimiter, cfg.MaxUploadBytes, secLog)

	checks := map[string]usecase.Pinger{"database": nil, "redis": nil, "storage": nil}
	if dbPool != nil {
		checks["database"] = dbPool.Ping
	}
	if redis.Client() != nil {
		checks["redis"] = redis.HealthCheck
	}
	if objectStore != nil {
		checks["storage"] = objectStore.Ping
	}
	healthUC := usecase.NewHealthUsecase(checks)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:          authUC,
		PublicUC:        publicUC,
		ProjectUC:       projectUC,
		AboutUC:         aboutUC,
		SkillUC:         skillUC,
		SkillSliderUC:   sliderUC,
		CertificationUC: certUC,
		ExperienceUC:    expUC,
		ContactUC:       contactUC,
		UploadUC:        uploadUC,
		HealthUC:        healthUC,
		Guard:           middleware.NewSessionGuard(verifier, cfg.SiteOwnerID, secLog),
		Config:          cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	// Pending slider values are dropped; in-flight commits finish first.
	sliderUC.Close()

	logger.Log.Info("Server exiting")
}
