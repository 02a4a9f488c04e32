// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/WanderPlan/wanderplan-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"environment"`
	Port           string      `mapstructure:"port"`
	AllowedOrigins []string    `mapstructure:"allowed_origins"`
	Version        string      `mapstructure:"version"`
}

// DatabaseConfig holds PostgreSQL connection details.
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	Name           string `mapstructure:"name"`
	SSLMode        string `mapstructure:"ssl_mode"`
	MaxConnections int    `mapstructure:"max_connections"`
}

// URL returns a postgres:// connection URL.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// RedisConfig holds Redis connection details for the geocode cache.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AIConfig holds the structured-generation service settings. The service
// speaks the OpenAI-compatible chat completions protocol.
type AIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	PlannerModel   string        `mapstructure:"planner_model"`
	ExtractorModel string        `mapstructure:"extractor_model"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// GeocodingConfig holds the geocoding provider settings.
type GeocodingConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

// MapSyncConfig tunes the marker sync engine.
type MapSyncConfig struct {
	ReadyRetryInterval time.Duration `mapstructure:"ready_retry_interval"`
	ReadyRetryAttempts int           `mapstructure:"ready_retry_attempts"`
	ResizeSettleDelay  time.Duration `mapstructure:"resize_settle_delay"`
	FitMargin          int           `mapstructure:"fit_margin"`
}

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	AI        AIConfig        `mapstructure:"ai"`
	Geocoding GeocodingConfig `mapstructure:"geocoding"`
	MapSync   MapSyncConfig   `mapstructure:"map_sync"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.environment", string(EnvDevelopment))
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.version", "dev")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	// Secrets need a default too: Unmarshal only reads keys viper knows
	// about, and AutomaticEnv alone does not register them.
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "wanderplan")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_connections", 10)

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ai.base_url", "https://dashscope.aliyuncs.com/compatible-mode/v1")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.planner_model", "qwen3-max")
	v.SetDefault("ai.extractor_model", "qwen-turbo")
	v.SetDefault("ai.timeout", 2*time.Minute)

	v.SetDefault("geocoding.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoding.user_agent", "WanderPlanBackend/1.0")
	v.SetDefault("geocoding.cache_ttl", 24*time.Hour)

	v.SetDefault("map_sync.ready_retry_interval", 500*time.Millisecond)
	v.SetDefault("map_sync.ready_retry_attempts", 5)
	v.SetDefault("map_sync.resize_settle_delay", 200*time.Millisecond)
	v.SetDefault("map_sync.fit_margin", 60)
}

// LoadConfig reads configuration from the environment, applying defaults.
// Environment variables use underscores, e.g. AI_API_KEY, DATABASE_HOST.
func LoadConfig() (*Config, error) {
	log := logger.GetLogger()

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"aiBaseURL", cfg.AI.BaseURL,
		"aiKey", logger.MaskSensitiveString(cfg.AI.APIKey, 3, 2),
	)
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Environment != EnvDevelopment && c.Server.Environment != EnvProduction {
		return fmt.Errorf("invalid environment: %s", c.Server.Environment)
	}
	if c.Server.Environment == EnvProduction && c.AI.APIKey == "" {
		return fmt.Errorf("AI_API_KEY is required in production")
	}
	if c.MapSync.ReadyRetryAttempts <= 0 {
		return fmt.Errorf("map_sync.ready_retry_attempts must be positive")
	}
	return nil
}
