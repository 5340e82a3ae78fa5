// Package config resolves the task file location and output settings.
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the binary name used in usage and version output.
	AppName = "task-tracker"

	// EnvPrefix prefixes the environment overrides, e.g. TASK_TRACKER_FILE.
	EnvPrefix = "TASK_TRACKER"

	// DefaultStoreFile is the task file, relative to the working directory.
	DefaultStoreFile = "tasks.json"
)

const (
	keyFile  = "file"
	keyDebug = "debug"
	keyQuiet = "quiet"
)

// Config holds configuration paths and settings.
type Config struct {
	// StorePath is the task file path.
	StorePath string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger receives diagnostic logs. Never nil after New.
	Logger *slog.Logger
}

// New resolves the configuration. A non-empty storePath (from --file) wins
// over TASK_TRACKER_FILE, which wins over DefaultStoreFile.
func New(storePath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(keyFile, DefaultStoreFile)
	v.SetDefault(keyDebug, false)
	v.SetDefault(keyQuiet, false)

	if storePath != "" {
		v.Set(keyFile, storePath)
	}

	path := strings.TrimSpace(v.GetString(keyFile))
	if path == "" {
		return nil, errors.New("task file path is empty")
	}

	return &Config{
		StorePath: path,
		Debug:     v.GetBool(keyDebug),
		Quiet:     v.GetBool(keyQuiet),
		Logger:    slog.New(slog.DiscardHandler),
	}, nil
}
