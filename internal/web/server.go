package web

import (
    "log/slog"
    "net/http"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/jaminalder/codex-noughts-crosses/internal/app"
)

// NewServer wires routes and returns an http.Handler.
func NewServer(s *app.Service, logger *slog.Logger) http.Handler {
    log := logger.With("component", "web")
    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    r.Use(requestLogger(log))
    r.Use(middleware.Recoverer)

    h := &handlers{svc: s, tpl: loadTemplates(), log: log}
    r.Get("/", h.index)
    r.Get("/ping", ping)
    r.Post("/match", h.create)
    r.Route("/match/{id}", func(r chi.Router) {
        r.Get("/", h.view)
        r.Post("/play", h.play)
        r.Post("/restart", h.restart)
        r.Post("/delete", h.remove)
    })
    return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
            start := time.Now()
            defer func() {
                log.Debug("request",
                    "method", r.Method,
                    "path", r.URL.Path,
                    "status", ww.Status(),
                    "bytes", ww.BytesWritten(),
                    "duration", time.Since(start),
                    "request_id", middleware.GetReqID(r.Context()),
                )
            }()
            next.ServeHTTP(ww, r)
        })
    }
}
