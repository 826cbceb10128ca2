package main

import (
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reversi_go/internal/game"
)

func TestPlayOneGameFrames(t *testing.T) {
	for _, pair := range [][2]string{{"heuristic", "random"}, {"greedy", "heuristic"}, {"random", "random"}} {
		winner, frames, err := playOneGame(pair[0], pair[1], rand.New(rand.NewSource(9)))
		require.NoError(t, err, pair)
		require.NotEmpty(t, frames)

		for i, fr := range frames {
			assert.Equal(t, 60-i-1, fr.empty, "每手恰好填一个空位")
			assert.Contains(t, pair[:], fr.tag)
		}
		last := frames[len(frames)-1].diff
		switch {
		case last > 0:
			assert.Equal(t, game.White, winner)
		case last < 0:
			assert.Equal(t, game.Black, winner)
		default:
			assert.Equal(t, game.Empty, winner)
		}
	}
}

func TestStrategiesReturnLegalPoints(t *testing.T) {
	b := game.NewInitialBoard()
	rng := rand.New(rand.NewSource(1))
	for name, s := range strategies {
		p, err := s(b, game.White, rng)
		require.NoError(t, err, name)
		ok, _ := game.IsValidMove(b, p, game.White)
		assert.True(t, ok, name)

		_, err = s(game.NewBoard(), game.White, rng)
		assert.ErrorIs(t, err, game.ErrNoLegalMove, name)
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := [][]string{{"game", "ply"}, {"1", "1"}}
	require.NoError(t, writeCSV(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
