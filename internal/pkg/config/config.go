package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Rate  RateConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
	// TokenTTLHours bounds how long an issued token stays valid.
	TokenTTLHours int `env:"TOKEN_TTL_HOURS, default=24"`
	// AdminEmail identifies the admin principal; AdminPassword is used only
	// by the startup bootstrap that provisions the admin account.
	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@app.com"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin123"`
}

type RateConfig struct {
	// Backend selects the window store: "memory" (single-process,
	// best-effort) or "redis" (shared across processes).
	Backend string `env:"RATE_LIMIT_BACKEND, default=memory"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=job_board"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
