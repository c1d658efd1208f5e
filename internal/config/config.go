package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/quizwheel.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// AdminPasswordHash is a bcrypt hash of the operator password.
	// Leave empty to disable the admin endpoints.
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// GameIdleTimeout controls when abandoned games are evicted from
	// memory.
	GameIdleTimeout time.Duration `env:"GAME_IDLE_TIMEOUT" envDefault:"2h"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
