package config

import (
    "errors"
    "fmt"
    "io/fs"
    "log/slog"
    "os"
    "strings"
    "time"

    "github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
    LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
    HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
    RandomSeed uint64 `yaml:"random-seed" env:"RANDOM_SEED" env-default:"0" env-description:"seed for the computer opponent, 0 picks one at random"`
    HTTP       HTTP   `yaml:"http"`
}

type HTTP struct {
    ReadTimeout     time.Duration `yaml:"read-timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
    WriteTimeout    time.Duration `yaml:"write-timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
    IdleTimeout     time.Duration `yaml:"idle-timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"30s"`
    ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Load reads path when it exists and the environment otherwise. Environment
// variables override file values in both cases.
func Load(path string) (*Config, error) {
    config := &Config{}

    _, err := os.Stat(path)
    switch {
    case err == nil:
        if err = cleanenv.ReadConfig(path, config); err != nil {
            return nil, fmt.Errorf("read config %s: %w", path, err)
        }
    case errors.Is(err, fs.ErrNotExist):
        if err = cleanenv.ReadEnv(config); err != nil {
            return nil, fmt.Errorf("read env: %w", err)
        }
    default:
        return nil, fmt.Errorf("stat config %s: %w", path, err)
    }

    return config, nil
}

// MustLoad - load configuration, panicking when it cannot be read.
func MustLoad(path string) *Config {
    config, err := Load(path)
    if err != nil {
        panic(fmt.Errorf("unable to load config file: %w", err))
    }

    return config
}

// Addr returns the listen address.
func (that *Config) Addr() string {
    return ":" + that.HTTPPort
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (that *Config) SlogLevel() slog.Level {
    switch strings.ToLower(that.LogLevel) {
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
