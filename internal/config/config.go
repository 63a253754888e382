package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Telegram struct {
	Token  string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID int64  `env:"TELEGRAM_CHAT_ID"`
}

// Configured reports whether both relay parameters are present. An
// unconfigured pair disables order relay but not the HTTP server.
func (t Telegram) Configured() bool {
	return t.Token != "" && t.ChatID != 0
}

type Redis struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"720h"`
}

type Reports struct {
	Enabled bool   `env:"REPORTS_ENABLED" envDefault:"false"`
	Dir     string `env:"REPORTS_DIR" envDefault:"reports"`
}

type Config struct {
	Env          string        `env:"APP_ENV" envDefault:"development"`
	Port         int           `env:"PORT" envDefault:"10000"`
	CORSOrigin   string        `env:"CORS_ORIGIN" envDefault:"https://alfat81.github.io"`
	RelayTimeout time.Duration `env:"RELAY_TIMEOUT" envDefault:"10s"`

	Telegram Telegram
	Redis    Redis
	Reports  Reports
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Production() bool {
	return c.Env == "production"
}
