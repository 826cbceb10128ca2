package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reversi_go/internal/game"
)

func TestPlayOneGame(t *testing.T) {
	rec, err := playOneGame(7, 4, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, 7, rec.Game)
	assert.GreaterOrEqual(t, rec.Moves, 4)

	b, err := game.Deserialize(rec.Final)
	require.NoError(t, err)
	white, black := b.Score()
	assert.Equal(t, rec.White, white)
	assert.Equal(t, rec.Black, black)
	assert.False(t, game.HasAnyMove(b, game.White))
	assert.False(t, game.HasAnyMove(b, game.Black))
	// 开局两子各两枚，每步加一子
	assert.Equal(t, 4+rec.Moves, white+black)
}

func TestPlayOneGameDeterministic(t *testing.T) {
	a, err := playOneGame(0, 2, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	b, err := playOneGame(0, 2, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunWritesOneLinePerGame(t *testing.T) {
	var buf bytes.Buffer
	sum, err := run(context.Background(), &buf, 12, 3, 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 12, sum.whiteWins+sum.blackWins+sum.draws)

	seen := map[int]bool{}
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var rec gameRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		assert.Contains(t, []string{"white", "black", "empty"}, rec.Winner)
		seen[rec.Game] = true
	}
	require.NoError(t, sc.Err())
	assert.Len(t, seen, 12)
}
