package domain

import (
    "errors"
    "math/rand/v2"
)

// ErrBoardFull is returned when the opponent is asked to move with no free cell.
var ErrBoardFull = errors.New("board full")

// Corners in cyclic order; the opposite corner sits two positions away.
var Corners = [4]Coord{{0, 0}, {0, 2}, {2, 2}, {2, 0}}

// OppositeCorner returns the index of the corner diagonally across from i.
func OppositeCorner(i int) int { return (i + 2) % len(Corners) }

// Heuristic is the computer opponent. It follows a fixed decision table keyed
// on the number of moves already played in the match:
//
//  1: a random free corner
//  3: the corner opposite its first one, else a random free corner
//  5, 7: complete its own line, else block the opponent's, else a random free corner
//  otherwise: the first free cell
//
// All randomness comes from the injected source.
type Heuristic struct {
    rnd    *rand.Rand
    ledger []int
}

// NewHeuristic returns an opponent drawing from rnd.
func NewHeuristic(rnd *rand.Rand) *Heuristic {
    return &Heuristic{rnd: rnd}
}

// Reset forgets the corners picked so far.
func (h *Heuristic) Reset() { h.ledger = h.ledger[:0] }

// Ledger returns the corner indices picked so far, oldest first.
func (h *Heuristic) Ledger() []int {
    return append([]int(nil), h.ledger...)
}

// Choose picks the cell to play. It does not modify b.
func (h *Heuristic) Choose(b *Board, moveCount int, self Cell) (Coord, error) {
    if b.IsFull() {
        return Coord{}, ErrBoardFull
    }
    switch moveCount {
    case 1:
        return h.randomCorner(b), nil
    case 3:
        if len(h.ledger) > 0 {
            opp := OppositeCorner(h.ledger[0])
            if b.at(Corners[opp]) == Empty {
                h.ledger = append(h.ledger, opp)
                return Corners[opp], nil
            }
        }
        return h.randomCorner(b), nil
    case 5, 7:
        if ln, ok := b.FindLineWithCounts(self, 2); ok {
            c, _ := b.EmptyCell(ln)
            return c, nil
        }
        if ln, ok := b.FindLineWithCounts(self.Opponent(), 2); ok {
            c, _ := b.EmptyCell(ln)
            return c, nil
        }
        return h.randomCorner(b), nil
    default:
        return b.EmptyCells()[0], nil
    }
}

// randomCorner picks uniformly among the free corners and records the pick.
// With every corner taken it falls back to a random free cell. b must not be full.
func (h *Heuristic) randomCorner(b *Board) Coord {
    free := make([]int, 0, len(Corners))
    for i, c := range Corners {
        if b.at(c) == Empty {
            free = append(free, i)
        }
    }
    if len(free) == 0 {
        cells := b.EmptyCells()
        return cells[h.rnd.IntN(len(cells))]
    }
    i := free[h.rnd.IntN(len(free))]
    h.ledger = append(h.ledger, i)
    return Corners[i]
}
