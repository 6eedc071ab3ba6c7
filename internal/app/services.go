package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/neuroadapt-backend/internal/catalog"
	"github.com/yungbote/neuroadapt-backend/internal/observability"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
	"github.com/yungbote/neuroadapt-backend/internal/presets"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	Assessment services.AssessmentService

	Engine  *presets.Engine
	Catalog *catalog.Catalog
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")

	rules, err := presets.LoadRules(cfg.PresetRulesPath)
	if err != nil {
		return Services{}, fmt.Errorf("load preset rules: %w", err)
	}
	if cfg.PresetRulesPath != "" {
		log.Info("Preset rules loaded", "path", cfg.PresetRulesPath)
	}
	cat, err := catalog.Load(cfg.QuestionCatalogPath)
	if err != nil {
		return Services{}, fmt.Errorf("load question catalog: %w", err)
	}
	engine := presets.NewEngine(log, rules)

	return Services{
		Auth: services.NewAuthService(log, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Assessment: services.NewAssessmentService(
			db,
			log,
			engine,
			cat,
			reposet.User,
			reposet.PersonalizePrefs,
			reposet.CategoryScores,
			reposet.FontTrial,
			reposet.Submission,
			reposet.PresetDecision,
			clients.PresetCache,
			metrics,
		),
		Engine:  engine,
		Catalog: cat,
	}, nil
}
