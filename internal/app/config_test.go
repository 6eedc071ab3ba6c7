package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "JWT_SECRET_KEY", "REDIS_ADDR", "PRESET_CACHE_TTL_SECONDS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig(logger.Nop())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "defaultsecret", cfg.JWTSecretKey)
	assert.Equal(t, 10*time.Minute, cfg.PresetCacheTTL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/na.db")
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("ACCESS_TOKEN_TTL", "60")
	t.Setenv("PRESET_CACHE_TTL_SECONDS", "30")
	t.Setenv("PRESET_RULES_PATH", "config/preset_rules.yaml")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := LoadConfig(logger.Nop())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "/tmp/na.db", cfg.DB.SQLitePath)
	assert.Equal(t, "s3cret", cfg.JWTSecretKey)
	assert.Equal(t, time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 30*time.Second, cfg.PresetCacheTTL)
	assert.Equal(t, "config/preset_rules.yaml", cfg.PresetRulesPath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}
