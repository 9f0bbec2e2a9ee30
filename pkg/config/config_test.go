package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, SourceEmbedded, cfg.Source.Kind)
	assert.Equal(t, CacheMemory, cfg.Cache.Kind)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ENVIRONMENT", "production")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SOURCE_KIND", "minio")
	t.Setenv("SOURCE_OBJECT", "runs/latest.json")
	t.Setenv("CACHE_KIND", "redis")
	t.Setenv("CACHE_TTL", "1h")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, SourceMinIO, cfg.Source.Kind)
	assert.Equal(t, "runs/latest.json", cfg.Source.Object)
	assert.Equal(t, CacheRedis, cfg.Cache.Kind)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown source", map[string]string{"SOURCE_KIND": "ftp"}},
		{"file source without path", map[string]string{"SOURCE_KIND": "file"}},
		{"unknown cache", map[string]string{"CACHE_KIND": "memcached"}},
		{"unknown environment", map[string]string{"SERVER_ENVIRONMENT": "qa"}},
		{"unknown log level", map[string]string{"LOG_LEVEL": "trace"}},
		{"malformed duration", map[string]string{"CACHE_TTL": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
