package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBUrl         string
	RunMigrations bool
	// Supabase (auth + storage)
	SupabaseUrl        string
	SupabaseKey        string
	SupabaseServiceKey string
	SupabaseJWTSecret  string
	// SiteOwnerID pins the single content owner. Empty means any valid session is the owner.
	SiteOwnerID    string
	FrontendURL    string
	AllowedOrigins []string
	// Object storage
	StorageProvider   string // "supabase" or "s3"
	StorageBucket     string
	StoragePublicBase string // Public URL prefix for the s3 provider
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	MaxUploadBytes    int64
	// SMTP Configuration
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	ContactEmailTo string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitContactLimit    int
	RateLimitLoginThreshold  int
	RateLimitGlobalThreshold int
	UploadsPerMinute         int
	UploadsPerDay            int
	// Caching / editor tuning
	PublicCacheTTLSeconds int
	SkillDebounceMillis   int
	Environment           string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, missing file is fine in production)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", false),
		// Trailing slash would produce .co//auth style URLs
		SupabaseUrl:        strings.TrimRight(getEnv("SUPABASE_URL", getEnv("NEXT_PUBLIC_SUPABASE_URL", "")), "/"),
		SupabaseKey:        getEnv("SUPABASE_ANON_KEY", getEnv("SUPABASE_KEY", "")),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", getEnv("SUPABASE_SERVICE_KEY", "")),
		SupabaseJWTSecret:  getEnv("SUPABASE_JWT_SECRET", ""),
		SiteOwnerID:        getEnv("SITE_OWNER_ID", ""),
		FrontendURL:        strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AllowedOrigins:     getEnvList("ALLOWED_ORIGINS", nil),
		// Storage
		StorageProvider:   getEnv("STORAGE_PROVIDER", "supabase"),
		StorageBucket:     getEnv("STORAGE_BUCKET", "project-images"),
		StoragePublicBase: strings.TrimRight(getEnv("STORAGE_PUBLIC_BASE_URL", ""), "/"),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		MaxUploadBytes:    int64(getEnvInt("MAX_UPLOAD_MB", 5)) << 20,
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactLimit:    getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300),
		UploadsPerMinute:         getEnvInt("UPLOADS_PER_MINUTE", 10),
		UploadsPerDay:            getEnvInt("UPLOADS_PER_DAY", 200),
		PublicCacheTTLSeconds: getEnvInt("PUBLIC_CACHE_TTL_SECONDS", 30),
		SkillDebounceMillis:   getEnvInt("SKILL_DEBOUNCE_MS", 500),
		Environment:           getEnv("APP_ENV", "development"),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Using in-memory content store.")
	}
	if cfg.SupabaseUrl == "" {
		log.Println("WARNING: SUPABASE_URL is missing. Login relay and JWKS verification are disabled.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in release mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || os.Getenv("GIN_MODE") == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.TrimRight(part, "/"))
		}
	}
	return out
}
