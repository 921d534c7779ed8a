package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE",
		"REDIS_HOST", "REDIS_PORT", "KAFKA_ENABLED", "API_PREFIX", "API_VERSION"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "fyyurdb", cfg.Database.Name)
	assert.Equal(t, "udacity", cfg.Database.User)
	assert.Equal(t, "host=localhost port=5432 user=udacity password=udacity dbname=fyyurdb sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
	assert.Equal(t, ":5000", cfg.GetServerAddress())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DB_NAME", "fyyur_test")
	t.Setenv("RATE_LIMIT_WINDOW_DURATION", "30s")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092 ,")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.GetServerAddress())
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.Contains(t, cfg.Database.DSN, "dbname=fyyur_test")
	assert.Equal(t, 30*time.Second, cfg.RateLimit.WindowDuration)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 0, cfg.Redis.DB, "unparsable values fall back to the default")
}
