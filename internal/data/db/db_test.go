package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

func TestSQLiteServiceMigrates(t *testing.T) {
	svc, err := NewService(Config{Driver: DriverSQLite, SQLitePath: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	require.NoError(t, AutoMigrateAll(svc.DB()))
	for _, m := range types.Models() {
		assert.True(t, svc.DB().Migrator().HasTable(m), "missing table for %T", m)
	}
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := NewService(Config{Driver: "oracle"}, logger.Nop())
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{PostgresHost: "db", PostgresPort: "5432", PostgresUser: "u", PostgresPassword: "p", PostgresName: "neuroadapt"}
	assert.Equal(t, "postgres://u:p@db:5432/neuroadapt?sslmode=disable", cfg.PostgresDSN())
}
