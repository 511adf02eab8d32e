package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type Config struct {
	Log LogConfig

	// EnvFileLoaded reports whether a .env file was read.
	EnvFileLoaded bool
}

type LogConfig struct {
	Encoding         string
	Timestamps       bool
	DefaultVerbosity int
}

// Load reads .env when present, then the process environment. A missing
// .env is not an error and nothing is printed about it.
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(path string) (*Config, error) {
	loaded := true
	if err := godotenv.Load(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		loaded = false
	}

	cfg := &Config{
		Log: LogConfig{
			Encoding:         getEnv("PADDINGTON_LOG_ENCODING", EncodingConsole),
			Timestamps:       getEnvAsBool("PADDINGTON_LOG_TIMESTAMPS", false),
			DefaultVerbosity: getEnvAsInt("PADDINGTON_DEFAULT_VERBOSITY", 0),
		},
		EnvFileLoaded: loaded,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Encoding {
	case EncodingConsole, EncodingJSON:
	default:
		return fmt.Errorf("unsupported log encoding %q (want %s or %s)", c.Log.Encoding, EncodingConsole, EncodingJSON)
	}
	if c.Log.DefaultVerbosity < 0 {
		return fmt.Errorf("default verbosity must be >= 0, got %d", c.Log.DefaultVerbosity)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
