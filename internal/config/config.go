package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Global singleton kept for the crontab reload job and CLI entrypoints.
var globalConfig *Config

// Config holds all environment backed configuration for the genesis service.
type Config struct {
	// HTTP Server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Database
	DBDriver          string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseURL       string        `env:"DATABASE_URL" envDefault:"genesis.db"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Persona voice overrides
	PersonaConfigsEnabled bool                    `env:"GENESIS_PERSONA_CONFIGS" envDefault:"false"`
	PersonaConfigSet      string                  `env:"GENESIS_PERSONA_CONFIG_SET" envDefault:"default"`
	PersonaConfigFile     string                  `env:"GENESIS_PERSONA_CONFIGS_FILE"`
	PersonaBootstrap      *PersonaBootstrapConfig `env:"-"`

	// Remote responder (optional delegation to an OpenAI-compatible endpoint)
	RemoteResponderEnabled bool   `env:"REMOTE_RESPONDER_ENABLED" envDefault:"false"`
	OpenAIAPIKey           string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL          string `env:"OPENAI_BASE_URL"`
	OpenAIModel            string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Network stats gauge refresh
	StatsRefreshIntervalMinutes int  `env:"STATS_REFRESH_INTERVAL_MINUTES" envDefault:"5"`
	StatsRefreshEnabled         bool `env:"STATS_REFRESH_ENABLED" envDefault:"true"`

	// Observability / Logging
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string        `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"genesis"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"genesis"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate   bool `env:"AUTO_MIGRATE" envDefault:"true"`
	EnableSwagger bool `env:"ENABLE_SWAGGER" envDefault:"true"`

	// Internal
	EnvReloadedAt time.Time
}

// Supported database drivers.
const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

// Load parses environment variables into Config and performs minimal validation.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	switch cfg.DBDriver {
	case DBDriverSQLite, DBDriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (expected %q or %q)", cfg.DBDriver, DBDriverSQLite, DBDriverPostgres)
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL must not be empty")
	}

	cfg.PersonaConfigSet = strings.TrimSpace(cfg.PersonaConfigSet)
	if cfg.PersonaConfigSet == "" {
		cfg.PersonaConfigSet = "default"
	}

	if cfg.PersonaConfigsEnabled {
		configFile := strings.TrimSpace(cfg.PersonaConfigFile)
		if configFile == "" {
			configFile = DefaultPersonaConfigFile
		}
		bootstrap, err := LoadPersonaBootstrapConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("load persona configs: %w", err)
		}
		cfg.PersonaBootstrap = bootstrap
		if len(bootstrap.PersonasForSet(cfg.PersonaConfigSet)) == 0 {
			return nil, fmt.Errorf("persona config set %q is missing or empty in %s", cfg.PersonaConfigSet, configFile)
		}
	}

	if cfg.RemoteResponderEnabled && strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required when REMOTE_RESPONDER_ENABLED is set")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// GetGlobal returns the global config instance for backwards compatibility.
// Deprecated: Use dependency injection with Load() instead.
func GetGlobal() *Config {
	return globalConfig
}

// GetEnvReloadedAt returns when the environment was last reloaded
// Deprecated: Use GetGlobal().EnvReloadedAt instead
func GetEnvReloadedAt() time.Time {
	if globalConfig != nil {
		return globalConfig.EnvReloadedAt
	}
	return time.Time{}
}

// PersonaBootstrapEntries returns the configured persona overrides for the active set.
func (c *Config) PersonaBootstrapEntries() []PersonaBootstrapEntry {
	if c == nil || c.PersonaBootstrap == nil {
		return nil
	}
	return c.PersonaBootstrap.PersonasForSet(c.PersonaConfigSet)
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
