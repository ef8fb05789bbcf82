package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		t.Setenv("GIN_MODE", "")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "supabase", cfg.StorageProvider)
		assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
		assert.Equal(t, 500, cfg.SkillDebounceMillis)
	})

	t.Run("Should read and normalize overrides", func(t *testing.T) {
		t.Setenv("GIN_MODE", "")
		t.Setenv("SUPABASE_URL", "https://proj.supabase.co/")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example.com/, ,https://b.example.com")
		t.Setenv("MAX_UPLOAD_MB", "2")
		t.Setenv("RUN_MIGRATIONS", "true")
		t.Setenv("SKILL_DEBOUNCE_MS", "not-a-number")
		t.Setenv("APP_ENV", "production")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://proj.supabase.co", cfg.SupabaseUrl)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
		assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes)
		assert.True(t, cfg.RunMigrations)
		assert.Equal(t, 500, cfg.SkillDebounceMillis)
		assert.True(t, cfg.IsProduction())
	})
}
