package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/neuroadapt-backend/internal/http/handlers"
	httpMW "github.com/yungbote/neuroadapt-backend/internal/http/middleware"
	"github.com/yungbote/neuroadapt-backend/internal/observability"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	CORSOrigins    []string
	Metrics        *observability.Metrics
	AuthMiddleware *httpMW.AuthMiddleware

	AssessmentHandler *httpH.AssessmentHandler
	PresetHandler     *httpH.PresetHandler
	QuestionHandler   *httpH.QuestionHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(httpMW.Recover(cfg.Log))
	if cfg.ServiceName != "" {
		r.Use(httpMW.OTel(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	// Metrics
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Catalog (public)
		if cfg.QuestionHandler != nil {
			api.GET("/questions", cfg.QuestionHandler.List)
		}
		if cfg.PresetHandler != nil {
			api.GET("/presets", cfg.PresetHandler.List)
			api.GET("/presets/:preset/settings", cfg.PresetHandler.Settings)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Assessments
		if cfg.AssessmentHandler != nil {
			protected.POST("/assessments", cfg.AssessmentHandler.Submit)
			protected.POST("/font-trials", cfg.AssessmentHandler.RecordFontTrials)
			protected.GET("/font-trials", cfg.AssessmentHandler.ListFontTrials)
		}

		// Presets
		if cfg.PresetHandler != nil {
			protected.GET("/presets/current", cfg.PresetHandler.Current)
			protected.POST("/presets/reclassify", cfg.PresetHandler.Reclassify)
			protected.GET("/presets/decisions", cfg.PresetHandler.Decisions)
		}
	}

	return r
}
