// game/ai.go
package game

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Rand is the random source used to break ties; *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// 默认不输出，由宿主程序通过 SetLogger 接入
var logger logrus.FieldLogger = discardLogger()

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger replaces the logger used for computer-move diagnostics. A nil
// logger restores the silent default.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = discardLogger()
	}
	logger = l
}

// exposesCorner 在副本上预演一步，看对手是否因此获得可下的角
// 只看一层：不考虑之后自己再次暴露角的情况
func exposesCorner(b *Board, mover CellState, p Point) bool {
	nb := acquireBoard()
	defer releaseBoard(nb)
	b.copyInto(nb)

	if _, err := ApplyMove(nb, p, mover); err != nil {
		logger.WithError(err).WithField("point", p).Warn("lookahead on illegal move")
		return true
	}
	opp := Opponent(mover)
	for _, c := range corners {
		if ok, _ := IsValidMove(nb, c, opp); ok {
			return true
		}
	}
	return false
}

// BestMoves ranks the candidates: corner moves beat any other move, and
// within that tier only the largest flip count survives. With checkCorner,
// moves that hand the opponent a corner are dropped first.
func BestMoves(b *Board, mover CellState, moves []Move, checkCorner bool) []Point {
	var best []Point
	bestFlips := 0
	cornerTier := false

	for _, m := range moves {
		if checkCorner && exposesCorner(b, mover, m.At) {
			continue
		}
		isCorner := m.At.IsCorner()
		switch {
		case isCorner && !cornerTier:
			cornerTier = true
			best = []Point{m.At}
			bestFlips = m.Flips
		case isCorner == cornerTier:
			if m.Flips > bestFlips {
				best = []Point{m.At}
				bestFlips = m.Flips
			} else if m.Flips == bestFlips {
				best = append(best, m.At)
			}
		}
	}
	return best
}

// SelectMove picks the computer's move for mover without playing it.
func SelectMove(b *Board, mover CellState, rng Rand) (Move, error) {
	if !mover.IsPlayer() {
		return Move{}, fmt.Errorf("select move: %w", ErrInvalidColor)
	}
	moves := LegalMoves(b, mover)
	if len(moves) == 0 {
		return Move{}, fmt.Errorf("select move for %s: %w", mover.Name(), ErrNoLegalMove)
	}

	pass := 1
	best := BestMoves(b, mover, moves, true)
	if len(best) == 0 {
		// 每一步都会送角，只能退而求其次
		pass = 2
		best = BestMoves(b, mover, moves, false)
	}

	idx := rng.Intn(len(best))
	chosen := best[idx]
	flips := 0
	for _, m := range moves {
		if m.At == chosen {
			flips = m.Flips
			break
		}
	}

	logger.WithFields(logrus.Fields{
		"color":    mover.Name(),
		"pass":     pass,
		"legal":    len(moves),
		"options":  len(best),
		"selected": idx,
		"point":    chosen.String(),
	}).Debug("computer move selected")

	return Move{At: chosen, Flips: flips}, nil
}

// ComputerMove selects a move for mover and plays it on b.
func ComputerMove(b *Board, mover CellState, rng Rand) (Move, error) {
	mv, err := SelectMove(b, mover, rng)
	if err != nil {
		return Move{}, err
	}
	n, err := ApplyMove(b, mv.At, mover)
	if err != nil {
		return Move{}, err
	}
	mv.Flips = n
	return mv, nil
}
