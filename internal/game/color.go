package game

import (
	"fmt"
	"strings"
)

// CellState represents the owner of a cell: Empty, White or Black.
type CellState int

const (
	Empty CellState = iota
	White
	Black
)

// White opens the game.
const (
	First  = White
	Second = Black
)

// 对外协议里的固定符号，序列化与渲染都依赖它们
const (
	WhiteSymbol = "O"
	BlackSymbol = "#"
	EmptySymbol = " "
)

// Opponent returns the other side. Empty has no opponent and maps to Empty.
func Opponent(c CellState) CellState {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return Empty
}

// OppositeOf is Opponent for callers outside the rules kernel: asking for the
// opposite of Empty is reported instead of silently mapped.
func OppositeOf(c CellState) (CellState, error) {
	if !c.IsPlayer() {
		return Empty, ErrNoOpposite
	}
	return Opponent(c), nil
}

// IsPlayer reports whether c is White or Black.
func (c CellState) IsPlayer() bool {
	return c == White || c == Black
}

// Symbol returns the single-character token used by Serialize.
func (c CellState) Symbol() string {
	switch c {
	case White:
		return WhiteSymbol
	case Black:
		return BlackSymbol
	}
	return EmptySymbol
}

// Name returns "white", "black" or "empty".
func (c CellState) Name() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "empty"
}

func (c CellState) String() string {
	return c.Symbol()
}

// ParseSymbol is the inverse of Symbol.
func ParseSymbol(s string) (CellState, error) {
	switch s {
	case WhiteSymbol:
		return White, nil
	case BlackSymbol:
		return Black, nil
	case EmptySymbol:
		return Empty, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
}

// ParseColor accepts a player symbol or name ("O", "white", "#", "black").
func ParseColor(s string) (CellState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "o", "white", "w":
		return White, nil
	case "#", "black", "b":
		return Black, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}
