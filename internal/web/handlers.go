package web

import (
    "errors"
    "html/template"
    "log/slog"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"
    "github.com/jaminalder/codex-noughts-crosses/internal/app"
    "github.com/jaminalder/codex-noughts-crosses/internal/domain"
)

type handlers struct {
    svc *app.Service
    tpl *templates
    log *slog.Logger
}

func (h *handlers) write(w http.ResponseWriter, t *template.Template, name string, data any) {
    b, err := renderTemplate(t, name, data)
    if err != nil {
        h.log.Error("render failed", "template", t.Name(), "error", err)
        http.Error(w, "Internal Server Error", http.StatusInternalServerError)
        return
    }
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write(b)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
    h.write(w, h.tpl.index, "base", nil)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
    if err := r.ParseForm(); err != nil {
        http.Error(w, "bad form", http.StatusBadRequest)
        return
    }
    mode, err := domain.ParseMode(r.Form.Get("mode"))
    if err != nil {
        http.Error(w, "unknown mode", http.StatusBadRequest)
        return
    }
    cfg := domain.MatchConfig{
        Names: [2]string{r.Form.Get("player1"), r.Form.Get("player2")},
        Mode:  mode,
    }
    mv, err := h.svc.CreateMatch(cfg)
    if err != nil {
        h.log.Error("create match", "error", err)
        http.Error(w, "failed to create", http.StatusInternalServerError)
        return
    }
    http.Redirect(w, r, "/match/"+mv.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
    mv, ok := h.svc.Get(chi.URLParam(r, "id"))
    if !ok {
        http.NotFound(w, r)
        return
    }
    h.write(w, h.tpl.game, "base", boardData{View: mv})
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if err := r.ParseForm(); err != nil {
        http.Error(w, "bad form", http.StatusBadRequest)
        return
    }
    x, errX := strconv.Atoi(r.Form.Get("x"))
    y, errY := strconv.Atoi(r.Form.Get("y"))
    if errX != nil || errY != nil {
        http.Error(w, "bad coordinates", http.StatusBadRequest)
        return
    }
    mv, res, err := h.svc.Play(id, x, y)
    if errors.Is(err, app.ErrNotFound) {
        http.NotFound(w, r)
        return
    }
    var errMsg string
    if !res.Accepted {
        errMsg = moveError(res.Err)
    }
    h.write(w, h.tpl.board, "", boardData{View: mv, Error: errMsg})
}

func (h *handlers) restart(w http.ResponseWriter, r *http.Request) {
    mv, err := h.svc.Restart(chi.URLParam(r, "id"))
    if err != nil {
        if errors.Is(err, app.ErrNotFound) {
            http.NotFound(w, r)
            return
        }
        h.log.Error("restart match", "error", err)
        http.Error(w, "failed to restart", http.StatusInternalServerError)
        return
    }
    h.write(w, h.tpl.board, "", boardData{View: mv})
}

// remove drops the match and sends the browser back to the setup page.
func (h *handlers) remove(w http.ResponseWriter, r *http.Request) {
    if !h.svc.Delete(chi.URLParam(r, "id")) {
        http.NotFound(w, r)
        return
    }
    http.Redirect(w, r, "/", http.StatusSeeOther)
}

func moveError(err error) string {
    switch {
    case errors.Is(err, domain.ErrOccupied):
        return "Cell is occupied"
    case errors.Is(err, domain.ErrOutOfBounds):
        return "Out of bounds"
    case errors.Is(err, domain.ErrGameOver):
        return "Game is over"
    case errors.Is(err, domain.ErrNotYourTurn):
        return "Not your turn"
    default:
        return "Invalid move"
    }
}

func ping(w http.ResponseWriter, _ *http.Request) {
    w.WriteHeader(http.StatusOK)
    if _, err := w.Write([]byte("pong")); err != nil {
        http.Error(w, "Internal Server Error", http.StatusInternalServerError)
        return
    }
}
