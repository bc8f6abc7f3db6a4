// Package config loads server settings from an optional YAML file, a .env
// file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/dashboard"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/dbconfig"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/kvstore"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/mockdata"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/stats"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when LEAGUE_CONFIG is unset. It may be missing.
const DefaultPath = "config.yaml"

// Backend names
const (
	BackendPostgres = "postgres"
	BackendLocal    = "local"
	BackendRedis    = "redis"
)

type ServerConfig struct {
	Port            string        `yaml:"port"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LocalConfig struct {
	DataDir string `yaml:"data_dir"`
}

type NATSConfig struct {
	URL           string `yaml:"url"`
	Stream        string `yaml:"stream"`
	SubjectPrefix string `yaml:"subject_prefix"`
	Consumer      string `yaml:"consumer"`
}

// Enabled reports whether change events go through JetStream.
func (c NATSConfig) Enabled() bool {
	return c.URL != ""
}

type MockConfig struct {
	Enabled          bool `yaml:"enabled"`
	mockdata.Options `yaml:",inline"`
}

type RefreshConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Config struct {
	Server    ServerConfig        `yaml:"server"`
	Backend   string              `yaml:"backend"`
	Local     LocalConfig         `yaml:"local"`
	Redis     kvstore.RedisConfig `yaml:"redis"`
	NATS      NATSConfig          `yaml:"nats"`
	Dashboard dashboard.Config    `yaml:"dashboard"`
	Mock      MockConfig          `yaml:"mock"`
	Refresh   RefreshConfig       `yaml:"refresh"`
	Log       LogConfig           `yaml:"log"`

	// Database always comes from DB_* variables.
	Database dbconfig.Config `yaml:"-"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8080",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Local:     LocalConfig{DataDir: "data"},
		Redis:     kvstore.RedisConfig{Prefix: "league:"},
		Dashboard: dashboard.DefaultConfig(),
		Mock:      MockConfig{Options: mockdata.DefaultOptions()},
		Refresh:   RefreshConfig{Interval: 30 * time.Second},
		Log:       LogConfig{Level: "info", Pretty: true},
	}
}

// Load reads .env, then the YAML file named by LEAGUE_CONFIG (or
// DefaultPath), then applies environment overrides.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	path := os.Getenv("LEAGUE_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		d := Default()
		cfg, err = &d, nil
	}
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile parses a YAML file over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Backend = getEnv("LEAGUE_BACKEND", c.Backend)
	c.Local.DataDir = getEnv("LEAGUE_DATA_DIR", c.Local.DataDir)
	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvAsInt("REDIS_DB", c.Redis.DB)
	c.NATS.URL = getEnv("NATS_URL", c.NATS.URL)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Mock.Enabled = getEnvAsBool("LEAGUE_MOCK", c.Mock.Enabled)
	c.Database = dbconfig.NewConfigFromEnv()
}

// ResolveBackend returns the configured backend, or picks one: Postgres when
// a database host is set, Redis when an address is set, local files
// otherwise.
func (c *Config) ResolveBackend() string {
	if c.Backend != "" {
		return c.Backend
	}
	switch {
	case c.Database.Configured():
		return BackendPostgres
	case c.Redis.Addr != "":
		return BackendRedis
	default:
		return BackendLocal
	}
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Backend {
	case "", BackendPostgres, BackendLocal, BackendRedis:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.ResolveBackend() == BackendPostgres && !c.Database.Configured() {
		return errors.New("postgres backend requires DB_HOST")
	}
	if c.ResolveBackend() == BackendRedis && c.Redis.Addr == "" {
		return errors.New("redis backend requires redis.addr or REDIS_ADDR")
	}
	if c.Server.Port == "" {
		return errors.New("server port is required")
	}
	if c.Refresh.Interval <= 0 {
		return errors.New("refresh interval must be positive")
	}

	h := c.Dashboard.History
	switch h.SeasonScope {
	case stats.SeasonScopeAll, stats.SeasonScopeSameYear:
	default:
		return fmt.Errorf("unknown dashboard season scope %q", h.SeasonScope)
	}
	switch h.TeamScope {
	case stats.TeamScopeAll, stats.TeamScopeRegistered:
	default:
		return fmt.Errorf("unknown dashboard team scope %q", h.TeamScope)
	}
	switch h.ColorMode {
	case stats.ColorModeTeam, stats.ColorModePalette:
	default:
		return fmt.Errorf("unknown dashboard color mode %q", h.ColorMode)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}
