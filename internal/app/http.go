package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/neuroadapt-backend/internal/http"
	httpH "github.com/yungbote/neuroadapt-backend/internal/http/handlers"
	httpMW "github.com/yungbote/neuroadapt-backend/internal/http/middleware"
	"github.com/yungbote/neuroadapt-backend/internal/observability"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health     *httpH.HealthHandler
	Assessment *httpH.AssessmentHandler
	Preset     *httpH.PresetHandler
	Question   *httpH.QuestionHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(db),
		Assessment: httpH.NewAssessmentHandler(services.Assessment),
		Preset:     httpH.NewPresetHandler(services.Assessment),
		Question:   httpH.NewQuestionHandler(services.Catalog),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:               log,
		ServiceName:       ServiceName,
		CORSOrigins:       cfg.CORSOrigins,
		Metrics:           metrics,
		AuthMiddleware:    middleware.Auth,
		AssessmentHandler: handlers.Assessment,
		PresetHandler:     handlers.Preset,
		QuestionHandler:   handlers.Question,
		HealthHandler:     handlers.Health,
	})
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}
