package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration, read from the environment at startup.
type Config struct {
	Addr        string        `envconfig:"ADDR" default:":8080"`
	DatabaseURL string        `envconfig:"DATABASE_URL" required:"true"`
	Environment string        `envconfig:"ENVIRONMENT" default:"development"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"720h"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
