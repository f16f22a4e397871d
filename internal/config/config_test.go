package config

import (
    "log/slog"
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
    // Given: no config file on disk
    path := filepath.Join(t.TempDir(), "config.yml")

    // When
    conf, err := Load(path)

    // Then: defaults apply
    require.NoError(t, err)
    assert.Equal(t, "info", conf.LogLevel)
    assert.Equal(t, "8080", conf.HTTPPort)
    assert.Equal(t, uint64(0), conf.RandomSeed)
    assert.Equal(t, 10*time.Second, conf.HTTP.ReadTimeout)
    assert.Equal(t, 30*time.Second, conf.HTTP.IdleTimeout)
    assert.Equal(t, ":8080", conf.Addr())
}

func TestLoadFromFile(t *testing.T) {
    // Given: a config file overriding a few fields
    path := filepath.Join(t.TempDir(), "config.yml")
    yml := "log-level: debug\nhttp-port: \"9090\"\nrandom-seed: 42\nhttp:\n  read-timeout: 3s\n"
    require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

    // When
    conf, err := Load(path)

    // Then
    require.NoError(t, err)
    assert.Equal(t, "debug", conf.LogLevel)
    assert.Equal(t, "9090", conf.HTTPPort)
    assert.Equal(t, uint64(42), conf.RandomSeed)
    assert.Equal(t, 3*time.Second, conf.HTTP.ReadTimeout)
    assert.Equal(t, 10*time.Second, conf.HTTP.WriteTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
    t.Setenv("HTTP_PORT", "7070")
    t.Setenv("RANDOM_SEED", "7")

    conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

    require.NoError(t, err)
    assert.Equal(t, "7070", conf.HTTPPort)
    assert.Equal(t, uint64(7), conf.RandomSeed)
}

func TestLoadBrokenFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.yml")
    require.NoError(t, os.WriteFile(path, []byte("http-port: [oops"), 0o600))

    _, err := Load(path)
    require.Error(t, err)
    assert.Panics(t, func() { MustLoad(path) })
}

func TestSlogLevel(t *testing.T) {
    cases := map[string]slog.Level{
        "debug": slog.LevelDebug,
        "INFO":  slog.LevelInfo,
        "warn":  slog.LevelWarn,
        "error": slog.LevelError,
        "":      slog.LevelInfo,
    }
    for in, want := range cases {
        conf := &Config{LogLevel: in}
        assert.Equal(t, want, conf.SlogLevel(), "level %q", in)
    }
}
