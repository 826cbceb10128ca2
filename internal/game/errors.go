package game

import "errors"

// 可恢复错误：调用方可以重新输入或拒绝请求
var (
	ErrOutOfBounds   = errors.New("point out of board")
	ErrSizeMismatch  = errors.New("wrong size of string for board deserialization")
	ErrUnknownSymbol = errors.New("unknown cell symbol")
	ErrInvalidMove   = errors.New("not a valid move")
	ErrNoLegalMove   = errors.New("no legal move")
	ErrMustMove      = errors.New("cannot pass while a legal move exists")
	ErrGameOver      = errors.New("game is over")
)

// 契约错误：调用方没有预先校验，属于程序逻辑错误
var (
	ErrIllegalPlacement = errors.New("cannot place on occupied point")
	ErrIllegalRecolor   = errors.New("cannot recolor empty point or to the same color")
	ErrIllegalMove      = errors.New("illegal move")
	ErrNoOpposite       = errors.New("no opposite for empty cell")
	ErrInvalidColor     = errors.New("color must be white or black")
	ErrCorruptBoard     = errors.New("board holds a cell that is neither white nor black")
)

// IsContractViolation reports whether err signals a caller bug rather than
// bad input. Hosts usually treat these as fatal.
func IsContractViolation(err error) bool {
	for _, target := range []error{
		ErrIllegalPlacement,
		ErrIllegalRecolor,
		ErrIllegalMove,
		ErrNoOpposite,
		ErrInvalidColor,
		ErrCorruptBoard,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
