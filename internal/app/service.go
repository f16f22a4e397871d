package app

import (
    "errors"
    "fmt"
    "io"
    "log/slog"
    "math/rand/v2"
    "sync"
    "time"

    "github.com/google/uuid"
    "github.com/jaminalder/codex-noughts-crosses/internal/domain"
)

// Errors exposed by the service layer.
var ErrNotFound = errors.New("match not found")

// Source hands out the random generator for a new match.
type Source func() *rand.Rand

// SeededSource derives every match generator from one seed so runs can be
// replayed. Seed 0 picks a random seed. The returned Source is not safe for
// concurrent use; the Service only calls it under its lock.
func SeededSource(seed uint64) Source {
    if seed == 0 {
        seed = rand.Uint64()
    }
    master := rand.New(rand.NewPCG(seed, seed>>1|1))
    return func() *rand.Rand {
        return rand.New(rand.NewPCG(master.Uint64(), master.Uint64()))
    }
}

// MatchView is a copy of a match's state handed to the web layer.
type MatchView struct {
    ID         string
    Mode       domain.Mode
    Players    [2]domain.Player
    Board      [3][3]domain.Cell
    Outcome    domain.Outcome
    StatusText string
    // Winner is the winning player's name, empty unless the match is won.
    Winner     string
    Moves      int
    Created    time.Time
    Updated    time.Time
}

// Over reports whether the match has reached a win or a draw.
func (v MatchView) Over() bool { return v.Outcome.Status.Terminal() }

type entry struct {
    mu      sync.Mutex
    id      string
    match   *domain.Match
    created time.Time
    updated time.Time
}

func (e *entry) viewLocked() *MatchView {
    m := e.match
    var winner string
    if p, ok := m.Winner(); ok {
        winner = p.Name
    }
    return &MatchView{
        ID:         e.id,
        Mode:       m.Mode(),
        Players:    m.Players(),
        Board:      m.Snapshot(),
        Outcome:    m.Outcome(),
        StatusText: m.StatusText(),
        Winner:     winner,
        Moves:      m.MoveCount(),
        Created:    e.created,
        Updated:    e.updated,
    }
}

// Service keeps independent matches keyed by id. Each match is only touched
// under its own lock.
type Service struct {
    mu      sync.Mutex
    log     *slog.Logger
    newRand Source
    matches map[string]*entry
}

// NewService creates an empty registry. A nil source seeds randomly.
func NewService(logger *slog.Logger, src Source) *Service {
    if logger == nil {
        logger = slog.New(slog.NewTextHandler(io.Discard, nil))
    }
    if src == nil {
        src = SeededSource(0)
    }
    return &Service{
        log:     logger.With("component", "service"),
        newRand: src,
        matches: make(map[string]*entry),
    }
}

// CreateMatch registers and starts a new match.
func (s *Service) CreateMatch(cfg domain.MatchConfig) (*MatchView, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    m := domain.NewMatch(s.newRand())
    if err := m.Start(cfg); err != nil {
        return nil, fmt.Errorf("start match: %w", err)
    }
    now := time.Now()
    e := &entry{id: uuid.NewString(), match: m, created: now, updated: now}
    s.matches[e.id] = e
    s.log.Info("match created", "match", e.id, "mode", cfg.Mode)
    return e.viewLocked(), nil
}

func (s *Service) lookup(id string) (*entry, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    e, ok := s.matches[id]
    return e, ok
}

// Get returns a copy of the match state if present.
func (s *Service) Get(id string) (*MatchView, bool) {
    e, ok := s.lookup(id)
    if !ok {
        return nil, false
    }
    e.mu.Lock()
    defer e.mu.Unlock()
    return e.viewLocked(), true
}

// Play submits a move for the active human. A rejected move is reported in
// the MoveResult; the error is only set for an unknown match.
func (s *Service) Play(id string, x, y int) (*MatchView, domain.MoveResult, error) {
    e, ok := s.lookup(id)
    if !ok {
        return nil, domain.MoveResult{}, ErrNotFound
    }
    e.mu.Lock()
    defer e.mu.Unlock()
    res := e.match.SubmitMove(x, y)
    log := s.log.With("match", id, "x", x, "y", y)
    if !res.Accepted {
        log.Debug("move rejected", "error", res.Err)
        return e.viewLocked(), res, nil
    }
    if res.Err != nil {
        log.Error("computer move failed", "error", res.Err)
    }
    if res.Computer != nil {
        log.Debug("computer replied", "cx", res.Computer.X, "cy", res.Computer.Y)
    }
    e.updated = time.Now()
    if res.Outcome.Status.Terminal() {
        log.Info("match finished", "status", res.Outcome.Status, "winner", res.Outcome.Winner)
    }
    return e.viewLocked(), res, nil
}

// Restart starts the match over with the same players and mode.
func (s *Service) Restart(id string) (*MatchView, error) {
    e, ok := s.lookup(id)
    if !ok {
        return nil, ErrNotFound
    }
    e.mu.Lock()
    defer e.mu.Unlock()
    if err := e.match.Start(e.match.Config()); err != nil {
        return nil, fmt.Errorf("restart match: %w", err)
    }
    e.updated = time.Now()
    s.log.Info("match restarted", "match", id)
    return e.viewLocked(), nil
}

// Delete drops a match and reports whether it was registered.
func (s *Service) Delete(id string) bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.matches[id]; !ok {
        return false
    }
    delete(s.matches, id)
    s.log.Info("match deleted", "match", id)
    return true
}

// Len returns the number of registered matches.
func (s *Service) Len() int {
    s.mu.Lock()
    defer s.mu.Unlock()
    return len(s.matches)
}
