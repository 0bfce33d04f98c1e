// Package config loads the service configuration from the environment,
// optionally seeded from an env file.
package config

import (
	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings of the tile cloud service.
type Config struct {
	AppHost  string `env:"APP_HOST" envDefault:"localhost"`
	AppPort  string `env:"APP_PORT" envDefault:"8080" validate:"numeric"`
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info" validate:"loglevel"`

	PostgresHost         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser         string `env:"POSTGRES_USER" envDefault:"user"`
	PostgresPassword     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	PostgresDB           string `env:"POSTGRES_DB" envDefault:"launchanything"`
	PostgresMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	PostgresMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`

	// KafkaBrokers is optional; when empty, audit events are not published.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"tile-events"`
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	allowed := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}
	return allowed[fieldLevel.Field().String()]
}

// Load reads the env file at path (if present), parses environment
// variables into a Config and validates it.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return nil, err
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
