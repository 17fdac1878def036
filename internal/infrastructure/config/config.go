package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// Client settings.
	APIBaseURL     string        `env:"SCHOOL_API_URL,     default=http://localhost:3333"`
	RequestTimeout time.Duration `env:"SCHOOL_API_TIMEOUT, default=10s"`
	StateDir       string        `env:"SCHOOL_STATE_DIR"`
	LogLevel       string        `env:"LOG_LEVEL,          default=info"`

	// Mock service settings.
	Mock MockConfig
}

type MockConfig struct {
	Port      string `env:"PORT,       default=3333"`
	JWTSecret string `env:"JWT_SECRET, default=dev-secret"`
}

// Load reads configuration from environment variables using go-envconfig.
// StateDir defaults to ~/.schoolctl when unset.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.StateDir = filepath.Join(home, ".schoolctl")
	}
	return &cfg
}
