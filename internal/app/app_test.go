package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAppEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_MODE", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "app.db"))
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("OTEL_ENABLED", "false")
	t.Setenv("QUESTION_CATALOG_PATH", "")
	t.Setenv("PRESET_RULES_PATH", filepath.Join("..", "..", "config", "preset_rules.example.yaml"))
}

func TestNewWiresSQLiteApp(t *testing.T) {
	setAppEnv(t)

	a, err := New()
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.Router)
	require.NotNil(t, a.Services.Assessment)
	require.NotNil(t, a.Services.Catalog)
	assert.Nil(t, a.Metrics)

	for _, path := range []string{"/healthcheck", "/readyz", "/api/questions"} {
		rec := httptest.NewRecorder()
		a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equalf(t, http.StatusOK, rec.Code, "GET %s", path)
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/presets/current", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewFailsOnMissingRules(t *testing.T) {
	setAppEnv(t)
	t.Setenv("PRESET_RULES_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load preset rules")
}
