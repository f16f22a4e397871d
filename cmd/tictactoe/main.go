package main

import (
    "context"
    "errors"
    "fmt"
    "log/slog"
    "net/http"
    "os"
    "os/signal"
    "path/filepath"
    "syscall"

    "github.com/jaminalder/codex-noughts-crosses/internal/app"
    "github.com/jaminalder/codex-noughts-crosses/internal/config"
    "github.com/jaminalder/codex-noughts-crosses/internal/web"
)

func main() {
    defer func() {
        if err := recover(); err != nil {
            fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
            os.Exit(1)
        }
    }()

    conf := initConfig()
    logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: conf.SlogLevel()}))

    if err := run(logger, conf); err != nil {
        panic(fmt.Errorf("app run failed: %w", err))
    }
}

func initConfig() *config.Config {
    baseDir, err := os.Getwd()
    if err != nil {
        panic(fmt.Errorf("failed to get current directory: %w", err))
    }

    return config.MustLoad(filepath.Join(baseDir, "config.yml"))
}

func run(logger *slog.Logger, conf *config.Config) error {
    log := logger.With("component", "app")

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    svc := app.NewService(logger, app.SeededSource(conf.RandomSeed))
    srv := &http.Server{
        Addr:         conf.Addr(),
        Handler:      web.NewServer(svc, logger),
        ReadTimeout:  conf.HTTP.ReadTimeout,
        WriteTimeout: conf.HTTP.WriteTimeout,
        IdleTimeout:  conf.HTTP.IdleTimeout,
    }

    errCh := make(chan error, 1)
    go func() {
        log.Info("Starting HTTP server", "addr", srv.Addr)
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            errCh <- err
        }
        close(errCh)
    }()

    select {
    case err := <-errCh:
        if err != nil {
            return fmt.Errorf("HTTP server error: %w", err)
        }
        return nil
    case <-ctx.Done():
        log.Info("Received signal, shutting down")
    }

    shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.HTTP.ShutdownTimeout)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        return fmt.Errorf("shutdown: %w", err)
    }
    return nil
}
