// Package config loads runtime settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAddr            = "BIASLAB_ADDR"
	EnvStoreURL        = "BIASLAB_STORE_URL"
	EnvSeed            = "BIASLAB_SEED"
	EnvLogLevel        = "BIASLAB_LOG_LEVEL"
	EnvLogFormat       = "BIASLAB_LOG_FORMAT"
	EnvShutdownTimeout = "BIASLAB_SHUTDOWN_TIMEOUT"
)

// DefaultEnvFile is read when no other file is named
const DefaultEnvFile = ".env"

// Config holds the settings shared by the server and the CLI
type Config struct {
	Addr            string
	StoreURL        string
	Seed            uint32
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Default returns the settings used when nothing is configured. StoreURL
// stays empty so serve keeps plans in memory and the plan commands use a
// local SQLite file.
func Default() Config {
	return Config{
		Addr:            ":8000",
		StoreURL:        "",
		Seed:            42,
		LogLevel:        "info",
		LogFormat:       "text",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load reads envFile (if it exists) and then the environment. Variables
// already set in the environment win over the file. An empty envFile means
// DefaultEnvFile.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	fileValues, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		fileValues = map[string]string{}
	}

	return fromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	})
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvStoreURL); ok && v != "" {
		cfg.StoreURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid seed %q: %w", EnvSeed, v, err))
		} else {
			cfg.Seed = uint32(seed)
		}
	}
	if v, ok := lookup(EnvShutdownTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: invalid duration %q: %w", EnvShutdownTimeout, v, err))
		case d <= 0:
			errs = append(errs, fmt.Errorf("%s: must be positive, got %s", EnvShutdownTimeout, v))
		default:
			cfg.ShutdownTimeout = d
		}
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}
