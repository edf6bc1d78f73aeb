package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

type Config struct {
	Port             string        `env:"PORT" env-default:"5000"`
	Env              string        `env:"ENV" env-default:"development"`
	MongoURIOverride string        `env:"MONGO_URI"`
	DBUser           string        `env:"DB_USER"`
	DBPass           string        `env:"DB_PASS"`
	MongoHost        string        `env:"MONGO_HOST" env-default:"cluster0.o0nwk.mongodb.net"`
	MongoDatabase    string        `env:"MONGO_DATABASE" env-default:"BlogSphereDB"`
	StoreDriver      string        `env:"STORE_DRIVER" env-default:"mongo"`
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"*"`
	OtelEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ReadTimeout      time.Duration `env:"READ_TIMEOUT" env-default:"15s"`
	WriteTimeout     time.Duration `env:"WRITE_TIMEOUT" env-default:"15s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Load reads a .env file when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, assuming environment variables are set.")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	switch cfg.StoreDriver {
	case StoreDriverMongo, StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q (use %q or %q)", cfg.StoreDriver, StoreDriverMongo, StoreDriverMemory)
	}
	return &cfg, nil
}

// MongoURI resolves the connection string. An explicit MONGO_URI wins; otherwise an
// Atlas SRV URI is built from DB_USER/DB_PASS, falling back to a local server.
func (c *Config) MongoURI() string {
	if c.MongoURIOverride != "" {
		return c.MongoURIOverride
	}
	if c.DBUser != "" {
		u := url.URL{
			Scheme:   "mongodb+srv",
			User:     url.UserPassword(c.DBUser, c.DBPass),
			Host:     c.MongoHost,
			Path:     "/",
			RawQuery: "retryWrites=true&w=majority",
		}
		return u.String()
	}
	return "mongodb://localhost:27017"
}
