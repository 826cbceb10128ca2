package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Status is the turn-level state of a game.
type Status int

const (
	ToMove Status = iota
	Passed
	Finished
)

func (s Status) String() string {
	switch s {
	case ToMove:
		return "to-move"
	case Passed:
		return "passed"
	}
	return "finished"
}

// Turn records one half-move: either a disc placement or a pass.
type Turn struct {
	Player CellState `json:"-"`
	Color  string    `json:"color"`
	At     *Point    `json:"at,omitempty"`
	Flips  int       `json:"flips,omitempty"`
	Passed bool      `json:"passed,omitempty"`
}

// GameState 包含整个对局的状态：棋盘、行棋方、分数与胜负
type GameState struct {
	Board         *Board
	CurrentPlayer CellState
	ScoreWhite    int
	ScoreBlack    int
	Status        Status
	GameOver      bool
	Winner        CellState // Empty 表示平局
	History       []Turn

	passes int // 连续 pass 次数
}

// NewGameState starts a game from the standard position with First to move.
func NewGameState() *GameState {
	gs := &GameState{
		Board:         NewInitialBoard(),
		CurrentPlayer: First,
	}
	gs.updateScores()
	return gs
}

// ResumeGameState continues a game from an arbitrary board.
func ResumeGameState(b *Board, toMove CellState) (*GameState, error) {
	if !toMove.IsPlayer() {
		return nil, fmt.Errorf("resume: %w", ErrInvalidColor)
	}
	gs := &GameState{Board: b, CurrentPlayer: toMove}
	gs.updateScores()
	return gs, nil
}

func (gs *GameState) updateScores() {
	gs.ScoreWhite, gs.ScoreBlack = gs.Board.Score()
}

// GetScores 返回当前双方的分数 (white, black)
func (gs *GameState) GetScores() (int, int) {
	return gs.ScoreWhite, gs.ScoreBlack
}

// Reset restarts from the standard position.
func (gs *GameState) Reset() {
	*gs = *NewGameState()
}

// CanMove reports whether the side to move has a legal move.
func (gs *GameState) CanMove() bool {
	return !gs.GameOver && HasAnyMove(gs.Board, gs.CurrentPlayer)
}

// LegalMoves lists the moves of the side to move.
func (gs *GameState) LegalMoves() []Move {
	if gs.GameOver {
		return nil
	}
	return LegalMoves(gs.Board, gs.CurrentPlayer)
}

// MakeMove plays a validated move for the side to move. An illegal point is
// rejected with ErrInvalidMove and leaves the game untouched.
func (gs *GameState) MakeMove(p Point) (int, error) {
	if gs.GameOver {
		return 0, ErrGameOver
	}
	if ok, _ := IsValidMove(gs.Board, p, gs.CurrentPlayer); !ok {
		return 0, fmt.Errorf("%v for %s: %w", p, gs.CurrentPlayer.Name(), ErrInvalidMove)
	}
	n, err := ApplyMove(gs.Board, p, gs.CurrentPlayer)
	if err != nil {
		return 0, err
	}
	gs.commit(p, n)
	return n, nil
}

// ComputerMove lets the heuristic play for the side to move.
func (gs *GameState) ComputerMove(rng Rand) (Move, error) {
	if gs.GameOver {
		return Move{}, ErrGameOver
	}
	mv, err := ComputerMove(gs.Board, gs.CurrentPlayer, rng)
	if err != nil {
		return Move{}, err
	}
	gs.commit(mv.At, mv.Flips)
	return mv, nil
}

func (gs *GameState) commit(p Point, flips int) {
	at := p
	gs.History = append(gs.History, Turn{
		Player: gs.CurrentPlayer,
		Color:  gs.CurrentPlayer.Name(),
		At:     &at,
		Flips:  flips,
	})
	gs.passes = 0
	gs.Status = ToMove
	gs.updateScores()
	gs.CurrentPlayer = Opponent(gs.CurrentPlayer)
}

// Pass forfeits the turn. It is only allowed when the side to move has no
// legal move; the second pass in a row finishes the game.
func (gs *GameState) Pass() error {
	if gs.GameOver {
		return ErrGameOver
	}
	if HasAnyMove(gs.Board, gs.CurrentPlayer) {
		return fmt.Errorf("%s: %w", gs.CurrentPlayer.Name(), ErrMustMove)
	}
	gs.History = append(gs.History, Turn{
		Player: gs.CurrentPlayer,
		Color:  gs.CurrentPlayer.Name(),
		Passed: true,
	})
	gs.passes++
	gs.Status = Passed
	gs.CurrentPlayer = Opponent(gs.CurrentPlayer)
	if gs.passes >= 2 {
		gs.finish()
	}
	return nil
}

func (gs *GameState) finish() {
	gs.updateScores()
	gs.GameOver = true
	gs.Status = Finished
	switch {
	case gs.ScoreWhite > gs.ScoreBlack:
		gs.Winner = White
	case gs.ScoreBlack > gs.ScoreWhite:
		gs.Winner = Black
	default:
		gs.Winner = Empty
	}
	logger.WithFields(logrus.Fields{
		"white":  gs.ScoreWhite,
		"black":  gs.ScoreBlack,
		"winner": gs.Winner.Name(),
	}).Debug("game finished")
}

// Result is the score seen from a human playing against the computer.
type Result struct {
	Player   int
	Computer int
	Verdict  string
}

// ResultFor splits the score between the human and the computer side.
// Verdict is empty while the game is running.
func ResultFor(b *Board, computer CellState, finished bool) Result {
	white, black := b.Score()
	r := Result{Player: white, Computer: black}
	if computer == White {
		r.Player, r.Computer = black, white
	}
	if finished {
		switch {
		case r.Player == r.Computer:
			r.Verdict = "DRAW"
		case r.Computer > r.Player:
			r.Verdict = "Computer WINS"
		default:
			r.Verdict = "Player WINS"
		}
	}
	return r
}

// String renders the score line printed under the board.
func (r Result) String() string {
	s := fmt.Sprintf("Score Player vs Computer -- %d:%d", r.Player, r.Computer)
	if r.Verdict != "" {
		s += "\n" + r.Verdict
	}
	return s
}
