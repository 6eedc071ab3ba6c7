package app

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/neuroadapt-backend/internal/data/db"
	"github.com/yungbote/neuroadapt-backend/internal/platform/envutil"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

const ServiceName = "neuroadapt-backend"

type Config struct {
	Port        string
	CORSOrigins []string

	DB db.Config

	JWTSecretKey   string
	AccessTokenTTL time.Duration

	RedisAddr      string
	PresetCacheTTL time.Duration

	PresetRulesPath     string
	QuestionCatalogPath string
}

// LoadDotEnv reads .env when present; real environment variables win.
func LoadDotEnv(log *logger.Logger) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("Failed to load .env", "error", err)
	}
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := envutil.String("JWT_SECRET_KEY", "")
	if jwtSecretKey == "" {
		log.Warn("JWT_SECRET_KEY not set; using insecure development secret")
		jwtSecretKey = "defaultsecret"
	}
	accessTokenTTLSeconds := envutil.Int("ACCESS_TOKEN_TTL", 3600)
	cacheTTLSeconds := envutil.Int("PRESET_CACHE_TTL_SECONDS", 600)

	var origins []string
	for _, o := range strings.Split(envutil.String("CORS_ALLOWED_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:        envutil.String("PORT", "8080"),
		CORSOrigins: origins,
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", db.DriverPostgres),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost"),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432"),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres"),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", ""),
			PostgresName:     envutil.String("POSTGRES_NAME", "neuroadapt"),
			SQLitePath:       envutil.String("SQLITE_PATH", ""),
		},
		JWTSecretKey:        jwtSecretKey,
		AccessTokenTTL:      time.Duration(accessTokenTTLSeconds) * time.Second,
		RedisAddr:           envutil.String("REDIS_ADDR", ""),
		PresetCacheTTL:      time.Duration(cacheTTLSeconds) * time.Second,
		PresetRulesPath:     envutil.String("PRESET_RULES_PATH", ""),
		QuestionCatalogPath: envutil.String("QUESTION_CATALOG_PATH", ""),
	}
}
