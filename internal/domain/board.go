package domain

import "errors"

// Cell represents a board cell state.
type Cell uint8

const (
    Empty Cell = iota
    X
    O
)

// String returns the display symbol of the cell.
func (c Cell) String() string {
    switch c {
    case X:
        return "X"
    case O:
        return "O"
    default:
        return ""
    }
}

// Opponent returns the other mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
    switch c {
    case X:
        return O
    case O:
        return X
    default:
        return Empty
    }
}

// Coord addresses a cell: X is the row, Y the column.
type Coord struct {
    X, Y int
}

func (c Coord) inBounds() bool {
    return c.X >= 0 && c.X < 3 && c.Y >= 0 && c.Y < 3
}

// Line is one of the eight winning triples.
type Line [3]Coord

// Lines lists every winning line: rows, then columns, then the two diagonals.
// Scans walk it in this order.
var Lines = [8]Line{
    // rows
    {{0, 0}, {0, 1}, {0, 2}},
    {{1, 0}, {1, 1}, {1, 2}},
    {{2, 0}, {2, 1}, {2, 2}},
    // cols
    {{0, 0}, {1, 0}, {2, 0}},
    {{0, 1}, {1, 1}, {2, 1}},
    {{0, 2}, {1, 2}, {2, 2}},
    // diags
    {{0, 0}, {1, 1}, {2, 2}},
    {{0, 2}, {1, 1}, {2, 0}},
}

// Errors returned by board operations.
var (
    ErrOutOfBounds = errors.New("out of bounds")
    ErrOccupied    = errors.New("cell occupied")
    ErrInvalidMark = errors.New("invalid mark")
)

// Board is a fixed 3x3 board stored row-major.
type Board [9]Cell

func index(x, y int) int { return x*3 + y }

// Reset empties every cell.
func (b *Board) Reset() {
    *b = Board{}
}

// Place puts mark at (x, y). The board is left untouched on error.
func (b *Board) Place(x, y int, mark Cell) error {
    if !(Coord{x, y}).inBounds() {
        return ErrOutOfBounds
    }
    if mark != X && mark != O {
        return ErrInvalidMark
    }
    idx := index(x, y)
    if b[idx] != Empty {
        return ErrOccupied
    }
    b[idx] = mark
    return nil
}

// ValueAt returns the cell at (x, y).
func (b *Board) ValueAt(x, y int) (Cell, error) {
    if !(Coord{x, y}).inBounds() {
        return Empty, ErrOutOfBounds
    }
    return b[index(x, y)], nil
}

func (b *Board) at(c Coord) Cell { return b[index(c.X, c.Y)] }

// HasWinningLine reports whether any line is entirely mark.
func (b *Board) HasWinningLine(mark Cell) bool {
    if mark == Empty {
        return false
    }
    for _, ln := range Lines {
        if b.at(ln[0]) == mark && b.at(ln[1]) == mark && b.at(ln[2]) == mark {
            return true
        }
    }
    return false
}

// FindLineWithCounts returns the first line holding exactly target cells of
// mark with every other cell empty. With target 2 that is a line one move
// away from a win for mark.
func (b *Board) FindLineWithCounts(mark Cell, target int) (Line, bool) {
    for _, ln := range Lines {
        own, empty := 0, 0
        for _, c := range ln {
            switch b.at(c) {
            case mark:
                own++
            case Empty:
                empty++
            }
        }
        if own == target && own+empty == len(ln) {
            return ln, true
        }
    }
    return Line{}, false
}

// EmptyCell returns the first empty cell of ln.
func (b *Board) EmptyCell(ln Line) (Coord, bool) {
    for _, c := range ln {
        if b.at(c) == Empty {
            return c, true
        }
    }
    return Coord{}, false
}

// EmptyCells lists the free cells in row-major order.
func (b *Board) EmptyCells() []Coord {
    out := make([]Coord, 0, len(b))
    for i, c := range b {
        if c == Empty {
            out = append(out, Coord{i / 3, i % 3})
        }
    }
    return out
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
    for _, c := range b {
        if c == Empty {
            return false
        }
    }
    return true
}

// Snapshot copies the board into a row/column grid for rendering.
func (b *Board) Snapshot() [3][3]Cell {
    var out [3][3]Cell
    for i, c := range b {
        out[i/3][i%3] = c
    }
    return out
}
