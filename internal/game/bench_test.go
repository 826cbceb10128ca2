package game

import (
	"math/rand"
	"testing"
)

func BenchmarkLegalMoves(b *testing.B) {
	boards := RandomBoards(64, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bd := boards[i%len(boards)]
		LegalMoves(bd, White)
		LegalMoves(bd, Black)
	}
}

func BenchmarkSelectMove(b *testing.B) {
	boards := RandomBoards(64, 2)
	rng := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bd := boards[i%len(boards)]
		if HasAnyMove(bd, White) {
			_, _ = SelectMove(bd, White, rng)
		}
	}
}

func BenchmarkFullGame(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < b.N; i++ {
		gs := NewGameState()
		for !gs.GameOver {
			if gs.CanMove() {
				_, _ = gs.ComputerMove(rng)
			} else {
				_ = gs.Pass()
			}
		}
	}
}
