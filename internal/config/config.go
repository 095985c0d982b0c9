// Package config reads the settings of the hoot binaries from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/casualjim/hoot/dispatch"
	"github.com/joho/godotenv"
)

const (
	EnvLogLevel  = "HOOT_LOG_LEVEL"
	EnvWorkers   = "HOOT_WORKERS"
	EnvQueueSize = "HOOT_QUEUE_SIZE"
	EnvDump      = "HOOT_DUMP"
)

// Config holds the demo settings.
type Config struct {
	LogLevel slog.Level
	Pool     dispatch.PoolConfig
	// Dump pretty-prints handler results to stdout.
	Dump bool
}

// Load reads an optional .env file from the working directory, or the given files, and
// parses the environment. Variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env files: %w", err)
	}
	return FromEnv()
}

// FromEnv parses the environment without loading any file.
func FromEnv() (Config, error) {
	cfg := Config{
		LogLevel: slog.LevelInfo,
		Pool:     dispatch.DefaultPoolConfig(),
	}

	var errs []error
	if s := os.Getenv(EnvLogLevel); s != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(s)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvLogLevel, err))
		}
	}

	var err error
	if cfg.Pool.Workers, err = envIntOrDefault(EnvWorkers, cfg.Pool.Workers); err != nil {
		errs = append(errs, err)
	}
	if cfg.Pool.QueueSize, err = envIntOrDefault(EnvQueueSize, cfg.Pool.QueueSize); err != nil {
		errs = append(errs, err)
	}
	if cfg.Dump, err = envBoolOrDefault(EnvDump, false); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func envIntOrDefault(key string, def int) (int, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	if n < 1 {
		return def, fmt.Errorf("%s: must be positive, got %d", key, n)
	}
	return n, nil
}

func envBoolOrDefault(key string, def bool) (bool, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
