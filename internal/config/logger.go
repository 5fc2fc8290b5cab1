package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger: human-readable console output plus a rotated log file.
func SetupLogger(cfg Config) zerolog.Logger {
	if dir := filepath.Dir(cfg.LogFile); dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	mw := zerolog.MultiLevelWriter(console, file)
	zerolog.SetGlobalLevel(parseLevel(cfg.LogLevel))

	logger := zerolog.New(mw).With().Timestamp().Str("service", "sizeguide").Logger()
	log.Logger = logger
	return logger
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
