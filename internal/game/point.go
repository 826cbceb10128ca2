// File game/point.go
package game

import "fmt"

// BoardSize is the side length of the square board.
const BoardSize = 8

// Point is a board coordinate; both X and Y lie in [1, BoardSize].
// Y grows upwards, rank BoardSize is printed first.
type Point struct {
	X, Y int
}

var corners = [4]Point{
	{1, 1},
	{1, BoardSize},
	{BoardSize, 1},
	{BoardSize, BoardSize},
}

// CheckPoint reports whether (x, y) is on the board.
func CheckPoint(x, y int) bool {
	return x >= 1 && x <= BoardSize && y >= 1 && y <= BoardSize
}

// NewPoint validates (x, y) and returns the coordinate.
func NewPoint(x, y int) (Point, error) {
	if !CheckPoint(x, y) {
		return Point{}, fmt.Errorf("%w: (%d,%d) not in [1,%d]", ErrOutOfBounds, x, y, BoardSize)
	}
	return Point{X: x, Y: y}, nil
}

// pt 仅用于包内已知合法的坐标
func pt(x, y int) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// IsCorner reports whether p is one of the four corners. A corner disc can
// never be flipped.
func (p Point) IsCorner() bool {
	for _, c := range corners {
		if p == c {
			return true
		}
	}
	return false
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// scanIndex 返回序列化顺序中的下标：从第 8 行到第 1 行，每行从左到右
func (p Point) scanIndex() int {
	return (BoardSize-p.Y)*BoardSize + (p.X - 1)
}

// pointAt 是 scanIndex 的逆运算
func pointAt(i int) Point {
	return Point{X: i%BoardSize + 1, Y: BoardSize - i/BoardSize}
}

// AllPoints returns every cell in scan order.
func AllPoints() []Point {
	return allPoints[:]
}

var allPoints = func() (ps [BoardSize * BoardSize]Point) {
	for i := range ps {
		ps[i] = pointAt(i)
	}
	return ps
}()
