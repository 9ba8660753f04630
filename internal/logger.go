package internal

import (
	"io"
	"log/slog"
	"strings"

	"github.com/mama165/sdk-go/logs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger logs to stdout, or as JSON to a rotating file when LOG_FILE is set.
// The returned closer flushes the file and is a no-op for stdout.
func NewLogger(config Config) (*slog.Logger, io.Closer) {
	if config.LogFile == "" {
		return logs.GetLoggerFromString(config.LogLevel), closerFunc(func() error { return nil })
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(config.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	file := &lumberjack.Logger{
		Filename:   config.LogFile,
		MaxSize:    config.LogMaxSizeMB,
		MaxBackups: config.LogMaxBackups,
		MaxAge:     config.LogMaxAgeDays,
		Compress:   true,
	}
	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})), file
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
