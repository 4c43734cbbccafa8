package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// insecureDevSecret is substituted for a missing JWT_SECRET in development
// only. Production refuses to start without an explicit secret.
const insecureDevSecret = "ticklist-dev-secret"

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=5h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=ticklist"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ResolveSecret validates the signing secret. A missing secret is fatal
// outside development; in development a known insecure default is used and
// the returned flag tells the caller to warn loudly.
func (c *Config) ResolveSecret() (secret string, insecure bool, err error) {
	if c.JWTSecret != "" {
		return c.JWTSecret, false, nil
	}
	if !c.IsDevelopment() {
		return "", false, fmt.Errorf("config: JWT_SECRET is required when ENV=%s", c.Env)
	}
	return insecureDevSecret, true, nil
}
