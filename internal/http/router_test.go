package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/neuroadapt-backend/internal/catalog"
	presetcache "github.com/yungbote/neuroadapt-backend/internal/clients/redis"
	"github.com/yungbote/neuroadapt-backend/internal/data/repos"
	"github.com/yungbote/neuroadapt-backend/internal/data/repos/testutil"
	httpH "github.com/yungbote/neuroadapt-backend/internal/http/handlers"
	httpMW "github.com/yungbote/neuroadapt-backend/internal/http/middleware"
	"github.com/yungbote/neuroadapt-backend/internal/observability"
	"github.com/yungbote/neuroadapt-backend/internal/presets"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

func newTestServer(t *testing.T) (*gin.Engine, services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	log := testutil.Logger(t)
	cat, err := catalog.Default()
	require.NoError(t, err)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	auth := services.NewAuthService(log, "router-secret", time.Hour)
	svc := services.NewAssessmentService(
		db, log,
		presets.NewEngine(log, presets.DefaultRules()),
		cat,
		repos.NewUserRepo(db, log),
		repos.NewUserPersonalizationPrefsRepo(db, log),
		repos.NewCategoryScoreSetRepo(db, log),
		repos.NewFontTrialRepo(db, log),
		repos.NewAssessmentSubmissionRepo(db, log),
		repos.NewPresetDecisionRepo(db, log),
		presetcache.NoopPresetCache{},
		metrics,
	)

	r := NewRouter(RouterConfig{
		Log:               log,
		Metrics:           metrics,
		AuthMiddleware:    httpMW.NewAuthMiddleware(log, auth),
		AssessmentHandler: httpH.NewAssessmentHandler(svc),
		PresetHandler:     httpH.NewPresetHandler(svc),
		QuestionHandler:   httpH.NewQuestionHandler(cat),
		HealthHandler:     httpH.NewHealthHandler(db),
	})
	return r, auth
}

func call(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouterPublicAndProtectedRoutes(t *testing.T) {
	r, _ := newTestServer(t)

	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/healthcheck", "", nil).Code)
	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/readyz", "", nil).Code)
	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/api/questions", "", nil).Code)
	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/api/presets/focus_calm/settings", "", nil).Code)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/assessments"},
		{http.MethodPost, "/api/font-trials"},
		{http.MethodGet, "/api/font-trials"},
		{http.MethodGet, "/api/presets/current"},
		{http.MethodPost, "/api/presets/reclassify"},
		{http.MethodGet, "/api/presets/decisions"},
	} {
		rec := call(t, r, route.method, route.path, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestRouterAssessmentFlow(t *testing.T) {
	r, auth := newTestServer(t)
	token, err := auth.IssueToken(uuid.New())
	require.NoError(t, err)

	rec := call(t, r, http.MethodGet, "/api/presets/current", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"preset":"standard"`)

	rec = call(t, r, http.MethodPost, "/api/font-trials", token, map[string]any{
		"trials": []map[string]any{
			{"font_id": "OpenDyslexic", "rating": 5, "difficulty": "easy", "symptoms": map[string]bool{}},
			{"font_id": "Times New Roman", "rating": 1, "difficulty": "hard", "symptoms": map[string]bool{"letters_move": true, "words_blur": true}},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(t, r, http.MethodPost, "/api/assessments", token, map[string]any{
		"responses":   map[string]any{"read_reread": 5, "read_letters": 5, "read_place": 4, "read_slow": 4},
		"age_bracket": "adult",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"preset":"reading_support"`)

	rec = call(t, r, http.MethodGet, "/api/presets/current", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"preset":"reading_support"`)
	assert.Contains(t, rec.Body.String(), `"source":"database"`)

	rec = call(t, r, http.MethodGet, "/api/presets/decisions?limit=5", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history struct {
		Decisions []struct {
			Preset  string `json:"preset"`
			Trigger string `json:"trigger"`
		} `json:"decisions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history.Decisions, 1)
	assert.Equal(t, "assessment", history.Decisions[0].Trigger)

	rec = call(t, r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "na_preset_decisions_total"), "decision counter exported")
}
