package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startSerialized = "                        " +
	"   O#   " +
	"   #O   " +
	"                        "

func TestInitBoardScore(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Init())

	w, bl := b.Score()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, bl)
	assert.Equal(t, Black, b.Get(pt(4, 4)))
	assert.Equal(t, Black, b.Get(pt(5, 5)))
	assert.Equal(t, White, b.Get(pt(4, 5)))
	assert.Equal(t, White, b.Get(pt(5, 4)))

	// 第二次 init 会撞上已有棋子
	assert.ErrorIs(t, b.Init(), ErrIllegalPlacement)
}

func TestPlace(t *testing.T) {
	b := NewBoard()
	p := pt(3, 3)
	require.NoError(t, b.Place(p, White))
	assert.Equal(t, White, b.Get(p))

	err := b.Place(p, Black)
	assert.ErrorIs(t, err, ErrIllegalPlacement)
	assert.True(t, IsContractViolation(err))
	assert.Equal(t, White, b.Get(p), "failed place must not change the cell")

	assert.ErrorIs(t, b.Place(pt(1, 1), Empty), ErrInvalidColor)
	assert.ErrorIs(t, b.Place(Point{0, 4}, White), ErrOutOfBounds)
	assert.Equal(t, 1, b.Len())
}

func TestRecolor(t *testing.T) {
	b := NewBoard()
	p := pt(2, 7)

	assert.ErrorIs(t, b.Recolor(p, White), ErrIllegalRecolor, "empty cell")

	require.NoError(t, b.Place(p, Black))
	assert.ErrorIs(t, b.Recolor(p, Black), ErrIllegalRecolor, "same color")
	require.NoError(t, b.Recolor(p, White))
	assert.Equal(t, White, b.Get(p))
	assert.ErrorIs(t, b.Recolor(p, Empty), ErrInvalidColor)
}

func TestPositions(t *testing.T) {
	b := NewInitialBoard()
	white, black, err := b.Positions()
	require.NoError(t, err)
	assert.Equal(t, []Point{{4, 5}, {5, 4}}, white)
	assert.Equal(t, []Point{{5, 5}, {4, 4}}, black)

	b.cells[pt(1, 1)] = Empty
	_, _, err = b.Positions()
	assert.ErrorIs(t, err, ErrCorruptBoard)

	b = NewInitialBoard()
	b.cells[Point{0, 0}] = White
	_, _, err = b.Positions()
	assert.ErrorIs(t, err, ErrCorruptBoard)
}

func TestSerialize(t *testing.T) {
	b := NewInitialBoard()
	s := b.Serialize()
	assert.Len(t, s, BoardSize*BoardSize)
	assert.Equal(t, startSerialized, s)

	back, err := Deserialize(s)
	require.NoError(t, err)
	assert.True(t, b.Equal(back))
	assert.Equal(t, b.String(), back.String())
}

func TestDeserializeErrors(t *testing.T) {
	_, err := Deserialize("")
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = Deserialize(startSerialized + " ")
	assert.ErrorIs(t, err, ErrSizeMismatch)

	bad := []byte(startSerialized)
	bad[10] = 'x'
	_, err = Deserialize(string(bad))
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	assert.False(t, IsContractViolation(err))
}

func TestSerializeRoundTripRandomGames(t *testing.T) {
	for _, b := range RandomBoards(200, 7) {
		back, err := Deserialize(b.Serialize())
		require.NoError(t, err)
		require.True(t, b.Equal(back), "round trip changed board:%v", b)
	}
}

func TestParseDiagram(t *testing.T) {
	b, err := ParseDiagram(` standard start position


   *
   **
   *o
`)
	require.NoError(t, err)
	w, bl := b.Score()
	assert.Equal(t, 1, w)
	assert.Equal(t, 4, bl)
	assert.Equal(t, White, b.Get(pt(5, 4)))
	assert.Equal(t, Black, b.Get(pt(4, 6)))
}

func TestBoardString(t *testing.T) {
	s := NewInitialBoard().String()
	lines := strings.Split(s, "\n")

	assert.Equal(t, "   | 1 | 2 | 3 | 4 | 5 | 6 | 7 | 8 |", lines[1])
	assert.Equal(t, "---|---|---|---|---|---|---|---|---|---", lines[2])
	assert.Contains(t, s, " 5 |   |   |   | O | # |   |   |   | 5 ")
	assert.Contains(t, s, " 4 |   |   |   | # | O |   |   |   | 4 ")
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewInitialBoard()
	c := b.Clone()
	require.NoError(t, c.Place(pt(1, 1), White))
	assert.Equal(t, Empty, b.Get(pt(1, 1)))
	assert.False(t, b.Equal(c))
}
