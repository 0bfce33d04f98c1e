package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("nonexistent.env")
	assert.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost", cfg.PostgresHost)
	assert.Equal(t, 5432, cfg.PostgresPort)
	assert.Equal(t, "launchanything", cfg.PostgresDB)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "tile-events", cfg.KafkaTopic)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")

	cfg, err := Load("nonexistent.env")
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "db.internal", cfg.PostgresHost)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "verbose")

	cfg, err := Load("nonexistent.env")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_NonNumericPort(t *testing.T) {
	t.Setenv("APP_PORT", "eighty")

	cfg, err := Load("nonexistent.env")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
