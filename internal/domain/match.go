package domain

import (
    "errors"
    "fmt"
    "math/rand/v2"
    "strings"
)

// Status is the lifecycle state of a match.
type Status uint8

const (
    NotStarted Status = iota
    InProgress
    Won
    Draw
)

func (s Status) String() string {
    switch s {
    case InProgress:
        return "in progress"
    case Won:
        return "won"
    case Draw:
        return "draw"
    default:
        return "not started"
    }
}

// Terminal reports whether no further move is accepted.
func (s Status) Terminal() bool { return s == Won || s == Draw }

// Mode selects who sits in the second seat.
type Mode string

const (
    HumanVsHuman     Mode = "human"
    HumanVsHeuristic Mode = "computer"
)

// Errors returned by the match controller.
var (
    ErrGameOver    = errors.New("game over")
    ErrNotStarted  = errors.New("match not started")
    ErrNotYourTurn = errors.New("not your turn")
    ErrUnknownMode = errors.New("unknown mode")
    // ErrWrongMode is raised as a panic: asking for a computer move in a
    // human-only match is a caller bug.
    ErrWrongMode = errors.New("computer move requested in human vs human match")
)

// ParseMode maps a form value onto a Mode.
func ParseMode(s string) (Mode, error) {
    switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
    case HumanVsHuman, HumanVsHeuristic:
        return m, nil
    default:
        return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
    }
}

// Player is one of the two seats of a match.
type Player struct {
    Name     string
    Mark     Cell
    Computer bool
}

// MatchConfig is collected once at setup and handed to Start.
type MatchConfig struct {
    Names [2]string
    Mode  Mode
}

func (cfg MatchConfig) players() [2]Player {
    defaults := [2]string{"Player 1", "Player 2"}
    if cfg.Mode == HumanVsHeuristic {
        defaults = [2]string{"Player", "Computer"}
    }
    var ps [2]Player
    for i := range ps {
        name := strings.TrimSpace(cfg.Names[i])
        if name == "" {
            name = defaults[i]
        }
        ps[i] = Player{Name: name, Mark: X}
    }
    ps[1].Mark = O
    ps[1].Computer = cfg.Mode == HumanVsHeuristic
    return ps
}

// Outcome summarises where a match stands.
type Outcome struct {
    Status Status
    Winner Cell
}

// MoveResult is what the input boundary gets back for a submitted move.
type MoveResult struct {
    Accepted bool
    Outcome  Outcome
    Board    [3][3]Cell
    // Computer is the heuristic opponent's reply, if it moved in the same call.
    Computer *Coord
    Err      error
}

// Match owns one board and drives turns between two players.
type Match struct {
    board   Board
    ai      *Heuristic
    cfg     MatchConfig
    players [2]Player
    active  int
    moves   int
    status  Status
    winner  Cell
}

// NewMatch returns a match waiting for Start. rnd feeds the heuristic
// opponent; nil uses a randomly seeded source.
func NewMatch(rnd *rand.Rand) *Match {
    if rnd == nil {
        rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
    }
    return &Match{ai: NewHeuristic(rnd)}
}

// Start (re)starts the match from an empty board. It is valid in any state.
func (m *Match) Start(cfg MatchConfig) error {
    if _, err := ParseMode(string(cfg.Mode)); err != nil {
        return err
    }
    m.board.Reset()
    m.ai.Reset()
    m.cfg = cfg
    m.players = cfg.players()
    m.active = 0
    m.moves = 0
    m.status = InProgress
    m.winner = Empty
    return nil
}

// SubmitMove plays the active human's mark at (x, y). In human vs computer
// mode an accepted move is answered by the computer before returning.
func (m *Match) SubmitMove(x, y int) MoveResult {
    if err := m.ready(); err != nil {
        return m.result(false, err)
    }
    if m.players[m.active].Computer {
        return m.result(false, ErrNotYourTurn)
    }
    if err := m.apply(x, y); err != nil {
        return m.result(false, err)
    }
    if m.status != InProgress || !m.players[m.active].Computer {
        return m.result(true, nil)
    }
    c, err := m.HeuristicMove()
    res := m.result(true, err)
    if err == nil {
        res.Computer = &c
    }
    return res
}

// HeuristicMove lets the computer seat play. It panics with ErrWrongMode in a
// started human vs human match.
func (m *Match) HeuristicMove() (Coord, error) {
    if m.status == NotStarted {
        return Coord{}, ErrNotStarted
    }
    if m.cfg.Mode != HumanVsHeuristic {
        panic(ErrWrongMode)
    }
    if err := m.ready(); err != nil {
        return Coord{}, err
    }
    p := m.players[m.active]
    if !p.Computer {
        return Coord{}, ErrNotYourTurn
    }
    c, err := m.ai.Choose(&m.board, m.moves, p.Mark)
    if err != nil {
        return Coord{}, fmt.Errorf("choose move: %w", err)
    }
    if err := m.apply(c.X, c.Y); err != nil {
        return Coord{}, fmt.Errorf("play %v: %w", c, err)
    }
    return c, nil
}

func (m *Match) ready() error {
    switch {
    case m.status == NotStarted:
        return ErrNotStarted
    case m.status.Terminal():
        return ErrGameOver
    }
    return nil
}

// apply places the active player's mark and advances the state machine.
func (m *Match) apply(x, y int) error {
    p := m.players[m.active]
    if err := m.board.Place(x, y, p.Mark); err != nil {
        return err
    }
    m.moves++
    if m.board.HasWinningLine(p.Mark) {
        m.status = Won
        m.winner = p.Mark
        return nil
    }
    if m.moves == len(m.board) {
        m.status = Draw
        return nil
    }
    m.active = 1 - m.active
    return nil
}

func (m *Match) result(accepted bool, err error) MoveResult {
    return MoveResult{
        Accepted: accepted,
        Outcome:  m.Outcome(),
        Board:    m.board.Snapshot(),
        Err:      err,
    }
}

// Status returns the current lifecycle state.
func (m *Match) Status() Status { return m.status }

// Outcome returns the status with the winning mark, if any.
func (m *Match) Outcome() Outcome { return Outcome{Status: m.status, Winner: m.winner} }

// Winner returns the winning player once the match is won.
func (m *Match) Winner() (Player, bool) {
    if m.status != Won {
        return Player{}, false
    }
    return m.players[m.active], true
}

// ActivePlayer returns the player due to move, or the winner after a win.
func (m *Match) ActivePlayer() Player { return m.players[m.active] }

func (m *Match) Players() [2]Player { return m.players }

func (m *Match) Config() MatchConfig { return m.cfg }

func (m *Match) Mode() Mode { return m.cfg.Mode }

// MoveCount is the number of marks on the board.
func (m *Match) MoveCount() int { return m.moves }

func (m *Match) Snapshot() [3][3]Cell { return m.board.Snapshot() }

func (m *Match) ValueAt(x, y int) (Cell, error) { return m.board.ValueAt(x, y) }

// Ledger exposes the corners the computer opened with.
func (m *Match) Ledger() []int { return m.ai.Ledger() }

// StatusText is the line shown above the board.
func (m *Match) StatusText() string {
    switch m.status {
    case InProgress:
        return m.players[m.active].Name + " turn"
    case Won:
        return m.players[m.active].Name + " wins!"
    case Draw:
        return "A draw"
    default:
        return ""
    }
}
