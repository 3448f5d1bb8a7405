package cli

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JangRuBin2/rulang/internal/logging"
)

// Config holds host-level defaults loaded from `run --config`. It never
// reaches the language itself. A non-zero Port here takes precedence
// over the program's own `server` statement (only --port outranks it);
// see resolvePort.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Port     int    `yaml:"port"`
}

// LoadConfig reads and parses a YAML config file. An empty path
// returns a zero Config, not an error — --config is optional.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// createLogger builds the process logger from a level name, defaulting
// to info when level is empty or unrecognized.
func createLogger(level string) *slog.Logger {
	return logging.New(parseLevel(level))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
