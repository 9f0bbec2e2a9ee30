package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/validator"
)

// Clustering document sources
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceMinIO    = "minio"
)

// Raw document cache backends
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Source  SourceConfig
	Cache   CacheConfig
	Redis   RedisConfig
	Storage StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"SERVER_ENVIRONMENT" default:"development" validate:"oneof=development staging production test"`
	AllowedOrigins  []string      `envconfig:"SERVER_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
	RateLimit       float64       `envconfig:"SERVER_RATE_LIMIT" default:"20" validate:"gte=0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
}

// SourceConfig selects where the clustering document is loaded from
type SourceConfig struct {
	Kind   string `envconfig:"SOURCE_KIND" default:"embedded" validate:"oneof=embedded file minio"`
	Path   string `envconfig:"SOURCE_PATH" validate:"required_if=Kind file"`
	Object string `envconfig:"SOURCE_OBJECT" default:"clustering/clustering_results.json"`
}

// CacheConfig holds raw document cache configuration
type CacheConfig struct {
	Kind string        `envconfig:"CACHE_KIND" default:"memory" validate:"oneof=memory redis"`
	TTL  time.Duration `envconfig:"CACHE_TTL" default:"15m" validate:"gt=0"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"candyverse-sentiment"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
	MaxRetries      uint64 `envconfig:"STORAGE_MAX_RETRIES" default:"3"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Validate(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Cache.Kind == CacheRedis && c.Source.Kind != SourceMinIO {
		log.Printf("Warning: CACHE_KIND=redis has no effect unless SOURCE_KIND=minio")
	}
	return nil
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
