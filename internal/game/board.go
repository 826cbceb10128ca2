// File game/board.go
package game

import (
	"fmt"
	"strings"
	"sync"
)

// Board is a sparse occupancy map. Only White and Black cells are stored;
// a missing key means Empty.
type Board struct {
	cells map[Point]CellState
}

var boardPool = sync.Pool{
	New: func() any {
		return &Board{cells: make(map[Point]CellState, BoardSize*BoardSize)}
	},
}

// acquireBoard 从对象池取一块空棋盘，给一步预演用
func acquireBoard() *Board {
	b := boardPool.Get().(*Board)
	clear(b.cells)
	return b
}

func releaseBoard(b *Board) {
	boardPool.Put(b)
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{cells: make(map[Point]CellState, BoardSize*BoardSize)}
}

// NewInitialBoard creates a board holding the standard start position.
func NewInitialBoard() *Board {
	b := NewBoard()
	if err := b.Init(); err != nil {
		panic(err)
	}
	return b
}

// Init places the four centre discs. It fails if any of them is occupied.
func (b *Board) Init() error {
	mid := BoardSize / 2
	start := []struct {
		p Point
		c CellState
	}{
		{pt(mid, mid), Black},
		{pt(mid+1, mid+1), Black},
		{pt(mid, mid+1), White},
		{pt(mid+1, mid), White},
	}
	for _, s := range start {
		if err := b.Place(s.p, s.c); err != nil {
			return fmt.Errorf("init: %w", err)
		}
	}
	return nil
}

// Get returns the state at p; Empty when nothing is there.
func (b *Board) Get(p Point) CellState {
	if c, ok := b.cells[p]; ok {
		return c
	}
	return Empty
}

// Place puts a new disc of color c on an empty point.
func (b *Board) Place(p Point, c CellState) error {
	if !CheckPoint(p.X, p.Y) {
		return fmt.Errorf("place %v: %w", p, ErrOutOfBounds)
	}
	if !c.IsPlayer() {
		return fmt.Errorf("place %v: %w", p, ErrInvalidColor)
	}
	if b.Get(p) != Empty {
		return fmt.Errorf("place %v: %w", p, ErrIllegalPlacement)
	}
	b.cells[p] = c
	return nil
}

// Recolor flips the disc at p to c. The disc must currently belong to the
// opponent of c.
func (b *Board) Recolor(p Point, c CellState) error {
	if !c.IsPlayer() {
		return fmt.Errorf("recolor %v: %w", p, ErrInvalidColor)
	}
	cur := b.Get(p)
	if cur == Empty || cur == c {
		return fmt.Errorf("recolor %v from %q to %q: %w", p, cur.Symbol(), c.Symbol(), ErrIllegalRecolor)
	}
	b.cells[p] = c
	return nil
}

// Score counts the discs of each side.
func (b *Board) Score() (white, black int) {
	for _, p := range allPoints {
		switch b.Get(p) {
		case White:
			white++
		case Black:
			black++
		}
	}
	return white, black
}

// CountPieces 统计棋盘上 pl 方棋子数量
func (b *Board) CountPieces(pl CellState) int {
	white, black := b.Score()
	switch pl {
	case White:
		return white
	case Black:
		return black
	}
	return BoardSize*BoardSize - white - black
}

// Positions partitions the occupied cells by owner, in scan order.
func (b *Board) Positions() (white, black []Point, err error) {
	seen := 0
	for _, p := range allPoints {
		c, ok := b.cells[p]
		if !ok {
			continue
		}
		seen++
		switch c {
		case White:
			white = append(white, p)
		case Black:
			black = append(black, p)
		default:
			return nil, nil, fmt.Errorf("positions: %v holds %d: %w", p, c, ErrCorruptBoard)
		}
	}
	if seen != len(b.cells) {
		return nil, nil, fmt.Errorf("positions: %d entries off the board: %w", len(b.cells)-seen, ErrCorruptBoard)
	}
	return white, black, nil
}

// Len returns the number of discs on the board.
func (b *Board) Len() int {
	return len(b.cells)
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	nb := NewBoard()
	b.copyInto(nb)
	return nb
}

func (b *Board) copyInto(dst *Board) {
	for p, c := range b.cells {
		dst.cells[p] = c
	}
}

// Equal reports whether both boards hold the same discs.
func (b *Board) Equal(o *Board) bool {
	if len(b.cells) != len(o.cells) {
		return false
	}
	for p, c := range b.cells {
		if o.Get(p) != c {
			return false
		}
	}
	return true
}

// Serialize renders the board as BoardSize² symbols, rank BoardSize first,
// left to right within a rank.
func (b *Board) Serialize() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)
	for _, p := range allPoints {
		sb.WriteString(b.Get(p).Symbol())
	}
	return sb.String()
}

// Deserialize rebuilds a board from Serialize output.
func Deserialize(s string) (*Board, error) {
	if len(s) != BoardSize*BoardSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(s), BoardSize*BoardSize)
	}
	b := NewBoard()
	for i := 0; i < len(s); i++ {
		c, err := ParseSymbol(s[i : i+1])
		if err != nil {
			return nil, fmt.Errorf("deserialize at %d: %w", i, err)
		}
		if c == Empty {
			continue
		}
		b.cells[pointAt(i)] = c
	}
	return b, nil
}

// String draws the board with coordinates on every side.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	header := func() {
		sb.WriteString("   |")
		for i := 1; i <= BoardSize; i++ {
			fmt.Fprintf(&sb, " %-2d|", i)
		}
		sb.WriteString("\n")
	}
	rule := func() {
		sb.WriteString("---|")
		for i := 1; i <= BoardSize; i++ {
			sb.WriteString("---|")
		}
		sb.WriteString("---\n")
	}

	header()
	rule()
	for y := BoardSize; y >= 1; y-- {
		fmt.Fprintf(&sb, " %-2d|", y)
		for x := 1; x <= BoardSize; x++ {
			fmt.Fprintf(&sb, " %s |", b.Get(Point{x, y}).Symbol())
		}
		fmt.Fprintf(&sb, " %-2d\n", y)
		rule()
	}
	header()
	sb.WriteString("\n")
	return sb.String()
}

// ParseDiagram builds a board from a hand-drawn picture. The first line is a
// caption and is skipped; each following line is a rank, starting at rank
// BoardSize. '*', '#', 'X', 'x' mark Black, '0', 'o', 'O' mark White, any
// other character is an empty cell.
func ParseDiagram(diagram string) (*Board, error) {
	b := NewBoard()
	lines := strings.Split(diagram, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	for row, line := range lines {
		if row >= BoardSize {
			break
		}
		y := BoardSize - row
		for i, r := range []rune(line) {
			x := i + 1
			if x > BoardSize {
				break
			}
			var c CellState
			switch r {
			case '*', '#', 'X', 'x':
				c = Black
			case '0', 'o', 'O':
				c = White
			default:
				continue
			}
			if err := b.Place(pt(x, y), c); err != nil {
				return nil, fmt.Errorf("diagram row %d: %w", row+1, err)
			}
		}
	}
	return b, nil
}
