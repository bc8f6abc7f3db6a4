package dbconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "not-a-number")

	cfg := NewConfigFromEnv()

	assert.False(t, cfg.Configured())
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "league", cfg.Database)
	assert.Equal(t, "disable", cfg.SSLMode)
}

func TestDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 6543, User: "admin", Password: "p@ss", Database: "league", SSLMode: "require"}

	assert.True(t, cfg.Configured())
	assert.Equal(t, "postgres://admin:p%40ss@db:6543/league?sslmode=require", cfg.DSN())
}
