package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all control-plane configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Platform specifics
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Builder   BuilderConfig
	Edge      EdgeConfig
	Managed   ManagedConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the control-plane's own metadata store.
type PostgresConfig struct {
	URL             string
	MaxConns        int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	JWTSecret     string
	JWTExpire     time.Duration
	BcryptCost    int
	TokenCacheTTL time.Duration
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
	CacheSize int
	CacheTTL  time.Duration
}

// BuilderConfig tunes the deployment pipeline worker.
type BuilderConfig struct {
	Workers        int
	SourceDir      string // where uploaded archives are stored
	PollInterval   time.Duration
	HealthTimeout  time.Duration
	RestartBudget  int
	RestartBackoff time.Duration
}

// EdgeConfig describes the public routing zone for generated domains.
type EdgeConfig struct {
	Zone string // e.g. up.skylift.app
}

// ManagedConfig points at the shared clusters that back plugin provisioning.
type ManagedConfig struct {
	// PostgresAdminURL is a superuser DSN on the shared Postgres cluster.
	PostgresAdminURL string
	// PostgresHost/Port are the coordinates handed to applications.
	PostgresHost string
	PostgresPort int

	// Redis coordinates for logical-DB allocation.
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisMaxDBs   int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/skylift/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/skylift/")
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Metadata store
	cfg.Postgres.URL = viper.GetString("postgres.url")
	cfg.Postgres.MaxConns = viper.GetInt("postgres.max_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Postgres.URL = dbURL
	}

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.JWTExpire = viper.GetDuration("auth.jwt_expire")
	cfg.Auth.BcryptCost = viper.GetInt("auth.bcrypt_cost")
	cfg.Auth.TokenCacheTTL = viper.GetDuration("auth.token_cache_ttl")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}

	// Rate limiting
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.CacheSize = viper.GetInt("rate_limit.cache_size")
	cfg.RateLimit.CacheTTL = viper.GetDuration("rate_limit.cache_ttl")

	// Builder
	cfg.Builder.Workers = viper.GetInt("builder.workers")
	cfg.Builder.SourceDir = viper.GetString("builder.source_dir")
	cfg.Builder.PollInterval = viper.GetDuration("builder.poll_interval")
	cfg.Builder.HealthTimeout = viper.GetDuration("builder.health_timeout")
	cfg.Builder.RestartBudget = viper.GetInt("builder.restart_budget")
	cfg.Builder.RestartBackoff = viper.GetDuration("builder.restart_backoff")

	// Edge
	cfg.Edge.Zone = viper.GetString("edge.zone")

	// Managed clusters
	cfg.Managed.PostgresAdminURL = viper.GetString("managed.postgres_admin_url")
	cfg.Managed.PostgresHost = viper.GetString("managed.postgres_host")
	cfg.Managed.PostgresPort = viper.GetInt("managed.postgres_port")
	cfg.Managed.RedisHost = viper.GetString("managed.redis_host")
	cfg.Managed.RedisPort = viper.GetInt("managed.redis_port")
	cfg.Managed.RedisPassword = viper.GetString("managed.redis_password")
	cfg.Managed.RedisMaxDBs = viper.GetInt("managed.redis_max_dbs")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Postgres.URL == "" {
		return fmt.Errorf("postgres.url (or DATABASE_URL) is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret (or JWT_SECRET) is required")
	}
	if c.Edge.Zone == "" {
		return fmt.Errorf("edge.zone is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_conns", 20)
	viper.SetDefault("postgres.conn_max_lifetime", time.Hour)

	viper.SetDefault("auth.jwt_expire", 720*time.Hour)
	viper.SetDefault("auth.bcrypt_cost", 10)
	viper.SetDefault("auth.token_cache_ttl", 5*time.Minute)

	viper.SetDefault("rate_limit.per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.cache_size", 4096)
	viper.SetDefault("rate_limit.cache_ttl", 10*time.Minute)

	viper.SetDefault("builder.workers", 2)
	viper.SetDefault("builder.source_dir", "/var/lib/skylift/sources")
	viper.SetDefault("builder.poll_interval", 2*time.Second)
	viper.SetDefault("builder.health_timeout", 90*time.Second)
	viper.SetDefault("builder.restart_budget", 3)
	viper.SetDefault("builder.restart_backoff", 5*time.Second)

	viper.SetDefault("edge.zone", "up.skylift.app")

	viper.SetDefault("managed.postgres_host", "pg.skylift.internal")
	viper.SetDefault("managed.postgres_port", 5432)
	viper.SetDefault("managed.redis_host", "redis.skylift.internal")
	viper.SetDefault("managed.redis_port", 6379)
	viper.SetDefault("managed.redis_max_dbs", 16)
}
