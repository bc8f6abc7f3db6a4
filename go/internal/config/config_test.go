package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
server:
  port: "9090"
  allowed_origins: ["https://league.example"]
backend: local
local:
  data_dir: /var/lib/league
dashboard:
  recent_matches: 3
  history:
    season_scope: same_year
    team_scope: registered
    color_mode: palette
    palette: ["#111111", "#222222"]
mock:
  enabled: true
  seed: 7
  teams: 4
refresh:
  interval: 5s
log:
  level: debug
  pretty: false
`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LEAGUE_BACKEND", "LEAGUE_DATA_DIR", "REDIS_ADDR", "REDIS_PASSWORD",
		"REDIS_DB", "NATS_URL", "LOG_LEVEL", "LEAGUE_MOCK", "DB_HOST",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://league.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout, "unset keys keep defaults")
	assert.Equal(t, BackendLocal, cfg.Backend)
	assert.Equal(t, "/var/lib/league", cfg.Local.DataDir)
	assert.Equal(t, 3, cfg.Dashboard.RecentMatches)
	assert.Equal(t, stats.SeasonScopeSameYear, cfg.Dashboard.History.SeasonScope)
	assert.Equal(t, stats.ColorModePalette, cfg.Dashboard.History.ColorMode)
	assert.Len(t, cfg.Dashboard.History.Palette, 2)
	assert.True(t, cfg.Mock.Enabled)
	assert.Equal(t, int64(7), cfg.Mock.Seed)
	assert.Equal(t, 4, cfg.Mock.Teams)
	assert.Equal(t, 8, cfg.Mock.PlayersPerTeam)
	assert.Equal(t, 5*time.Second, cfg.Refresh.Interval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(writeConfig(t, "server: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("PORT", "7000")
	t.Setenv("NATS_URL", "nats://nats:4222")
	t.Setenv("LEAGUE_MOCK", "true")

	t.Setenv("LEAGUE_CONFIG", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.True(t, cfg.NATS.Enabled())
	assert.True(t, cfg.Mock.Enabled)
	assert.Equal(t, BackendLocal, cfg.ResolveBackend())
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAGUE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAppliesEnvOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAGUE_CONFIG", writeConfig(t, sample))
	t.Setenv("LEAGUE_DATA_DIR", "/tmp/league")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/league", cfg.Local.DataDir)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestResolveBackend(t *testing.T) {
	cfg := Default()
	assert.Equal(t, BackendLocal, cfg.ResolveBackend())

	cfg.Redis.Addr = "localhost:6379"
	assert.Equal(t, BackendRedis, cfg.ResolveBackend())

	cfg.Database.Host = "db"
	assert.Equal(t, BackendPostgres, cfg.ResolveBackend())

	cfg.Backend = BackendLocal
	assert.Equal(t, BackendLocal, cfg.ResolveBackend())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown backend", func(c *Config) { c.Backend = "sqlite" }, "unknown backend"},
		{"postgres without host", func(c *Config) { c.Backend = BackendPostgres }, "DB_HOST"},
		{"redis without addr", func(c *Config) { c.Backend = BackendRedis }, "REDIS_ADDR"},
		{"empty port", func(c *Config) { c.Server.Port = "" }, "port"},
		{"zero refresh", func(c *Config) { c.Refresh.Interval = 0 }, "refresh interval"},
		{"season scope", func(c *Config) { c.Dashboard.History.SeasonScope = "decade" }, "season scope"},
		{"team scope", func(c *Config) { c.Dashboard.History.TeamScope = "some" }, "team scope"},
		{"color mode", func(c *Config) { c.Dashboard.History.ColorMode = "rainbow" }, "color mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
