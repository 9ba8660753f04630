package local

import (
	"fmt"
	"room-bot/errors"

	"github.com/kelseyhightower/envconfig"
)

// Config seeds the simulated directory.
type Config struct {
	BotName string `envconfig:"BOT_NAME" default:"ding-bot"`
	// CONTACTS is a comma separated list of display names known to the directory
	Contacts    []string `envconfig:"CONTACTS" default:"Alice,Bruce LEE,Carol,Dave"`
	EventBuffer int      `envconfig:"EVENT_BUFFER" default:"64"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	if cfg.EventBuffer < 1 {
		return Config{}, fmt.Errorf("%w: EVENT_BUFFER must be positive, got %d", errors.ErrInvalidConfig, cfg.EventBuffer)
	}
	return cfg, nil
}
