package internal

import (
	"fmt"
	"room-bot/errors"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	LogLevel      string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB,default=50" validate:"gte=1"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS,default=3" validate:"gte=0"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS,default=14" validate:"gte=0"`

	TriggerWord string `env:"TRIGGER_WORD,default=ding" validate:"required"`
	RoomPrefix  string `env:"ROOM_PREFIX,default=ding" validate:"required"`
	HelperName  string `env:"HELPER_NAME,default=Bruce LEE" validate:"required"`

	WarmupDelay   time.Duration `env:"WARMUP_DELAY,default=3s" validate:"gte=0"`
	EvictionGrace time.Duration `env:"EVICTION_GRACE,default=10s" validate:"gte=0"`

	NumberOfWorkers int           `env:"NUMBER_OF_WORKERS,default=4" validate:"gte=1"`
	BufferSize      int           `env:"BUFFER_SIZE,default=64" validate:"gte=1"`
	HandlerTimeout  time.Duration `env:"HANDLER_TIMEOUT,default=30s" validate:"gt=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=10s" validate:"gte=0"`

	// DEBUG_PORT=0 disables the debug server
	DebugPort int `env:"DEBUG_PORT,default=8081" validate:"gte=0,lte=65535"`
}

var validate = validator.New()

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}

// Rows renders the configuration as key/value pairs for the startup summary.
func (c Config) Rows() [][]string {
	logFile := c.LogFile
	if logFile == "" {
		logFile = "stdout"
	}
	return [][]string{
		{"LOG_LEVEL", c.LogLevel},
		{"LOG_FILE", logFile},
		{"TRIGGER_WORD", c.TriggerWord},
		{"ROOM_PREFIX", c.RoomPrefix},
		{"HELPER_NAME", c.HelperName},
		{"WARMUP_DELAY", c.WarmupDelay.String()},
		{"EVICTION_GRACE", c.EvictionGrace.String()},
		{"NUMBER_OF_WORKERS", fmt.Sprint(c.NumberOfWorkers)},
		{"BUFFER_SIZE", fmt.Sprint(c.BufferSize)},
		{"HANDLER_TIMEOUT", c.HandlerTimeout.String()},
		{"RESTART_INTERVAL", c.RestartInterval.String()},
		{"METRIC_INTERVAL", c.MetricInterval.String()},
		{"DEBUG_PORT", fmt.Sprint(c.DebugPort)},
	}
}
