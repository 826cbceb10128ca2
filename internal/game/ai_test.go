package game

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// White 有两步可走：(2,2) 会让黑方拿到 (1,1)，(2,4) 不会
func exposingBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard()
	require.NoError(t, b.Place(pt(3, 2), Black))
	require.NoError(t, b.Place(pt(3, 3), Black))
	require.NoError(t, b.Place(pt(4, 2), White))
	return b
}

func TestBestMovesSkipsCornerExposure(t *testing.T) {
	b := exposingBoard(t)
	moves := LegalMoves(b, White)
	require.ElementsMatch(t, []Move{{pt(2, 4), 1}, {pt(2, 2), 1}}, moves)

	assert.True(t, exposesCorner(b, White, pt(2, 2)))
	assert.False(t, exposesCorner(b, White, pt(2, 4)))

	assert.Equal(t, []Point{pt(2, 4)}, BestMoves(b, White, moves, true))
	assert.ElementsMatch(t, []Point{pt(2, 2), pt(2, 4)}, BestMoves(b, White, moves, false))
}

func TestSelectMoveNeverExposesCorner(t *testing.T) {
	b := exposingBoard(t)
	before := b.Serialize()
	for seed := int64(0); seed < 50; seed++ {
		mv, err := SelectMove(b, White, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Equal(t, Move{At: pt(2, 4), Flips: 1}, mv)
	}
	assert.Equal(t, before, b.Serialize(), "lookahead must not touch the real board")
}

func TestSelectMoveFallsBackWhenEveryMoveExposes(t *testing.T) {
	// 两个角同时受威胁，白方任一步只能补上一个
	b := NewBoard()
	require.NoError(t, b.Place(pt(1, 2), White))
	require.NoError(t, b.Place(pt(1, 3), Black))
	require.NoError(t, b.Place(pt(8, 7), White))
	require.NoError(t, b.Place(pt(8, 6), Black))

	moves := LegalMoves(b, White)
	require.ElementsMatch(t, []Move{{pt(1, 4), 1}, {pt(8, 5), 1}}, moves)
	assert.Empty(t, BestMoves(b, White, moves, true))

	seen := map[Point]bool{}
	for seed := int64(0); seed < 50; seed++ {
		mv, err := SelectMove(b, White, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Contains(t, []Point{pt(1, 4), pt(8, 5)}, mv.At)
		seen[mv.At] = true
	}
	assert.Len(t, seen, 2, "ties are broken at random")
}

func TestCornerTierBeatsFlipCount(t *testing.T) {
	b := NewBoard()
	// (1,1) 只翻 1 个子
	require.NoError(t, b.Place(pt(2, 1), Black))
	require.NoError(t, b.Place(pt(3, 1), White))
	// (7,5) 翻 4 个子
	require.NoError(t, b.Place(pt(2, 5), White))
	for x := 3; x <= 6; x++ {
		require.NoError(t, b.Place(pt(x, 5), Black))
	}

	moves := LegalMoves(b, White)
	require.Contains(t, moves, Move{pt(7, 5), 4})
	require.Contains(t, moves, Move{pt(1, 1), 1})

	assert.Equal(t, []Point{pt(1, 1)}, BestMoves(b, White, moves, false))
}

func TestBestMovesKeepsMaxFlipsOfTopTier(t *testing.T) {
	for _, b := range RandomBoards(80, 3) {
		for _, side := range []CellState{White, Black} {
			moves := LegalMoves(b, side)
			if len(moves) == 0 {
				continue
			}
			anyCorner := false
			for _, m := range moves {
				anyCorner = anyCorner || m.At.IsCorner()
			}
			maxFlips := 0
			for _, m := range moves {
				if m.At.IsCorner() == anyCorner && m.Flips > maxFlips {
					maxFlips = m.Flips
				}
			}

			best := BestMoves(b, side, moves, false)
			require.NotEmpty(t, best)
			for _, p := range best {
				ok, n := IsValidMove(b, p, side)
				require.True(t, ok)
				require.Equal(t, anyCorner, p.IsCorner())
				require.Equal(t, maxFlips, n)
			}
		}
	}
}

func TestSelectMoveIsReproducible(t *testing.T) {
	for _, b := range RandomBoards(30, 11) {
		if !HasAnyMove(b, Black) {
			continue
		}
		a, err := SelectMove(b, Black, rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		c, err := SelectMove(b, Black, rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		assert.Equal(t, a, c)
	}
}

func TestComputerMove(t *testing.T) {
	b := NewInitialBoard()
	mv, err := ComputerMove(b, First, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 1, mv.Flips)
	assert.Equal(t, First, b.Get(mv.At))

	w, bl := b.Score()
	assert.Equal(t, 4, w)
	assert.Equal(t, 1, bl)
}

func TestSelectMoveWithoutLegalMoves(t *testing.T) {
	_, err := SelectMove(NewBoard(), White, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoLegalMove)

	_, err = SelectMove(NewInitialBoard(), Empty, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	l, ok := logger.(*logrus.Logger)
	require.True(t, ok)
	assert.Equal(t, io.Discard, l.Out)

	hooked, hook := test.NewNullLogger()
	hooked.SetLevel(logrus.DebugLevel)
	SetLogger(hooked)
	t.Cleanup(func() { SetLogger(nil) })

	_, err := SelectMove(NewInitialBoard(), White, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "computer move selected", hook.LastEntry().Message)

	SetLogger(nil)
	l, ok = logger.(*logrus.Logger)
	require.True(t, ok)
	assert.Equal(t, io.Discard, l.Out)
}
