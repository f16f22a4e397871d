package domain

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

// helper to place a sequence of marks
func placeAll(t *testing.T, b *Board, mark Cell, cells ...Coord) {
    t.Helper()
    for _, c := range cells {
        require.NoError(t, b.Place(c.X, c.Y, mark), "place %v at %v", mark, c)
    }
}

func TestNewBoardIsEmpty(t *testing.T) {
    var b Board
    for x := 0; x < 3; x++ {
        for y := 0; y < 3; y++ {
            v, err := b.ValueAt(x, y)
            require.NoError(t, err)
            assert.Equal(t, Empty, v, "cell %d,%d", x, y)
        }
    }
    assert.False(t, b.IsFull())
    assert.Len(t, b.EmptyCells(), 9)
}

func TestPlaceOutOfBounds(t *testing.T) {
    var b Board
    cases := []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}}
    for _, c := range cases {
        assert.ErrorIs(t, b.Place(c.X, c.Y, X), ErrOutOfBounds, "coord %v", c)
    }
    assert.Equal(t, Board{}, b)
}

func TestValueAtOutOfBounds(t *testing.T) {
    var b Board
    _, err := b.ValueAt(3, 1)
    assert.ErrorIs(t, err, ErrOutOfBounds)
    _, err = b.ValueAt(-1, 2)
    assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestPlaceRejectsEmptyMark(t *testing.T) {
    var b Board
    assert.ErrorIs(t, b.Place(1, 1, Empty), ErrInvalidMark)
}

func TestPlaceSucceedsOncePerCell(t *testing.T) {
    var b Board
    for x := 0; x < 3; x++ {
        for y := 0; y < 3; y++ {
            require.NoError(t, b.Place(x, y, X))
            // Second placement on the same cell always fails, whatever the mark.
            assert.ErrorIs(t, b.Place(x, y, O), ErrOccupied)
            assert.ErrorIs(t, b.Place(x, y, X), ErrOccupied)
            v, _ := b.ValueAt(x, y)
            assert.Equal(t, X, v)
        }
    }
    assert.True(t, b.IsFull())
    assert.Empty(t, b.EmptyCells())
}

func TestHasWinningLineEveryLine(t *testing.T) {
    for _, mark := range []Cell{X, O} {
        for _, ln := range Lines {
            var b Board
            placeAll(t, &b, mark, ln[:]...)
            assert.True(t, b.HasWinningLine(mark), "mark %v line %v", mark, ln)
            assert.False(t, b.HasWinningLine(mark.Opponent()), "mark %v line %v", mark, ln)
        }
    }
}

func TestHasWinningLineEmptyBoard(t *testing.T) {
    var b Board
    assert.False(t, b.HasWinningLine(X))
    assert.False(t, b.HasWinningLine(O))
    assert.False(t, b.HasWinningLine(Empty))
}

func TestHasWinningLineOnlyAfterThirdMark(t *testing.T) {
    // Given: an empty board
    var b Board

    // When: X fills the top row one cell at a time
    // Then: the win only shows up after the third mark
    require.NoError(t, b.Place(0, 0, X))
    assert.False(t, b.HasWinningLine(X))
    require.NoError(t, b.Place(0, 1, X))
    assert.False(t, b.HasWinningLine(X))
    require.NoError(t, b.Place(0, 2, X))
    assert.True(t, b.HasWinningLine(X))
}

func TestFindLineWithCounts(t *testing.T) {
    t.Run("none on empty board", func(t *testing.T) {
        var b Board
        _, ok := b.FindLineWithCounts(X, 2)
        assert.False(t, ok)
    })

    t.Run("blocked line is skipped", func(t *testing.T) {
        // Given: X holds two of the top row but O holds the third
        var b Board
        placeAll(t, &b, X, Coord{0, 0}, Coord{0, 1})
        placeAll(t, &b, O, Coord{0, 2})

        // When: looking for an X line one move from winning
        _, ok := b.FindLineWithCounts(X, 2)

        // Then: nothing qualifies
        assert.False(t, ok)
    })

    t.Run("first line in table order wins the tie", func(t *testing.T) {
        // Given: X threatens the middle column and the middle row
        var b Board
        placeAll(t, &b, X, Coord{1, 1}, Coord{0, 1}, Coord{1, 0})

        // When
        ln, ok := b.FindLineWithCounts(X, 2)

        // Then: the row comes before the column
        require.True(t, ok)
        assert.Equal(t, Lines[1], ln)
        c, ok := b.EmptyCell(ln)
        require.True(t, ok)
        assert.Equal(t, Coord{1, 2}, c)
    })

    t.Run("returned line always has an empty third cell", func(t *testing.T) {
        var b Board
        placeAll(t, &b, X, Coord{0, 0}, Coord{2, 2})
        placeAll(t, &b, O, Coord{1, 1}, Coord{0, 2})

        ln, ok := b.FindLineWithCounts(O, 2)
        require.True(t, ok)
        assert.Equal(t, Lines[7], ln)
        c, ok := b.EmptyCell(ln)
        require.True(t, ok)
        v, _ := b.ValueAt(c.X, c.Y)
        assert.Equal(t, Empty, v)
        assert.Equal(t, Coord{2, 0}, c)
    })

    t.Run("target one finds lines with a single mark", func(t *testing.T) {
        var b Board
        placeAll(t, &b, O, Coord{2, 1})

        ln, ok := b.FindLineWithCounts(O, 1)
        require.True(t, ok)
        assert.Equal(t, Lines[2], ln)
    })
}

func TestResetClearsBoard(t *testing.T) {
    var b Board
    placeAll(t, &b, X, Coord{0, 0}, Coord{1, 1})
    placeAll(t, &b, O, Coord{2, 2})

    b.Reset()

    assert.Equal(t, Board{}, b)
    assert.Equal(t, [3][3]Cell{}, b.Snapshot())
}

func TestSnapshotLayout(t *testing.T) {
    var b Board
    placeAll(t, &b, X, Coord{0, 2})
    placeAll(t, &b, O, Coord{2, 0})

    snap := b.Snapshot()
    assert.Equal(t, X, snap[0][2])
    assert.Equal(t, O, snap[2][0])
    assert.Equal(t, "X", snap[0][2].String())
    assert.Equal(t, "", snap[1][1].String())
}
