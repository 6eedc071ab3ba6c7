package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/neuroadapt-backend/internal/app"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

// Prints a bearer token for local testing against the API.
func main() {
	var userID string
	var ttl time.Duration
	flag.StringVar(&userID, "user", "", "user_id to embed (random when empty)")
	flag.DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to ACCESS_TOKEN_TTL)")
	flag.Parse()

	log := logger.Nop()
	app.LoadDotEnv(log)
	cfg := app.LoadConfig(log)
	if ttl <= 0 {
		ttl = cfg.AccessTokenTTL
	}

	id := uuid.New()
	if userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			fmt.Printf("invalid user_id: %v\n", err)
			os.Exit(1)
		}
		id = parsed
	}

	tok, err := services.NewAuthService(log, cfg.JWTSecretKey, ttl).IssueToken(id)
	if err != nil {
		fmt.Printf("issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("user_id=%s\n%s\n", id, tok)
}
