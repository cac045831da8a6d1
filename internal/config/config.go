package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=senvo port=5432 sslmode=disable"

type Config struct {
	HTTPPort       string        `envconfig:"HTTP_PORT" default:"8080"`
	DatabaseDSN    string        `envconfig:"DATABASE_DSN" default:"host=localhost user=postgres password=postgres dbname=senvo port=5432 sslmode=disable"`
	CORSOrigins    string        `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	LogsDirectory  string        `envconfig:"LOGS_DIRECTORY" default:"./logs"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	DBMaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "parsing environment")
	}

	if cfg.DatabaseDSN == defaultDSN {
		log.Println("[WARN] DATABASE_DSN is using the built-in default, set your own Postgres connection string for production.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the built-in default, set your own domain for production.")
	}

	return &cfg, nil
}
