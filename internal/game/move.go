package game

import "fmt"

// Move is a legal cell paired with the number of discs it flips.
type Move struct {
	At    Point
	Flips int
}

func (m Move) String() string {
	return fmt.Sprintf("%v+%d", m.At, m.Flips)
}

// Directions 是 8 个扫描方向（dx, dy），不含 (0,0)
var Directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// FlipSet returns the opponent discs that playing mover at p would flip.
// The result is empty when p is occupied or the move is illegal.
func FlipSet(b *Board, p Point, mover CellState) []Point {
	if !mover.IsPlayer() || !CheckPoint(p.X, p.Y) || b.Get(p) != Empty {
		return nil
	}
	opp := Opponent(mover)

	var result []Point
	for _, d := range Directions {
		var run []Point
		x, y := p.X+d[0], p.Y+d[1]
		for CheckPoint(x, y) {
			c := b.Get(Point{x, y})
			if c != opp {
				// 只有被己方棋子封住的一串才算数；空格或出界都作废
				if c == mover {
					result = append(result, run...)
				}
				break
			}
			run = append(run, Point{x, y})
			x += d[0]
			y += d[1]
		}
	}
	return result
}

// IsValidMove reports whether mover may play at p and how many discs flip.
func IsValidMove(b *Board, p Point, mover CellState) (bool, int) {
	if b.Get(p) != Empty {
		return false, 0
	}
	n := len(FlipSet(b, p, mover))
	return n > 0, n
}

// ApplyMove plays mover at p: flips every captured disc and then places the
// new one. It re-checks legality and returns ErrIllegalMove on a stale board.
func ApplyMove(b *Board, p Point, mover CellState) (int, error) {
	if b.Get(p) != Empty {
		return 0, fmt.Errorf("move to %v: occupied: %w", p, ErrIllegalMove)
	}
	flips := FlipSet(b, p, mover)
	if len(flips) == 0 {
		return 0, fmt.Errorf("move to %v: nothing to flip: %w", p, ErrIllegalMove)
	}
	for _, f := range flips {
		if err := b.Recolor(f, mover); err != nil {
			return 0, err
		}
	}
	if err := b.Place(p, mover); err != nil {
		return 0, err
	}
	return len(flips), nil
}

// LegalMoves 按扫描顺序枚举 mover 的全部合法落点
func LegalMoves(b *Board, mover CellState) []Move {
	moves := make([]Move, 0, 16)
	for _, p := range allPoints {
		if b.Get(p) != Empty {
			continue
		}
		if ok, n := IsValidMove(b, p, mover); ok {
			moves = append(moves, Move{At: p, Flips: n})
		}
	}
	return moves
}

// HasAnyMove reports whether mover has at least one legal move.
func HasAnyMove(b *Board, mover CellState) bool {
	for _, p := range allPoints {
		if ok, _ := IsValidMove(b, p, mover); ok {
			return true
		}
	}
	return false
}
