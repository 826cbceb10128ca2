// Package httpapi exposes the rule engine over HTTP. Every call carries the
// serialized board; the server keeps no game state.
package httpapi

import (
	"errors"
	"math/rand"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"reversi_go/internal/game"
)

// Handler 封装规则引擎的 HTTP 接口
type Handler struct {
	log *logrus.Logger

	mu  sync.Mutex // gin 并发处理请求，随机源需要加锁
	rng *rand.Rand
}

// NewHandler creates a Handler whose tie-breaks draw from a source seeded
// with seed.
func NewHandler(log *logrus.Logger, seed int64) *Handler {
	return &Handler{
		log: log,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn implements game.Rand.
func (h *Handler) Intn(n int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rng.Intn(n)
}

// BoardRequest is the common request body.
type BoardRequest struct {
	Board    string `json:"board"`
	Color    string `json:"color"`
	Computer string `json:"computer"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Finished bool   `json:"finished"`
}

// MoveResponse describes one legal move.
type MoveResponse struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Flips int `json:"flips"`
}

// ScoreResponse is the score split by colour and by participant.
type ScoreResponse struct {
	White    int `json:"white"`
	Black    int `json:"black"`
	Player   int `json:"player"`
	Computer int `json:"computer"`
}

// Symbols 返回三种格子的固定符号
func (h *Handler) Symbols(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"white": game.WhiteSymbol,
		"black": game.BlackSymbol,
		"empty": game.EmptySymbol,
	})
}

// Opposite returns the opposite colour symbol of :color.
func (h *Handler) Opposite(c *gin.Context) {
	color, err := game.ParseColor(c.Param("color"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	opp, err := game.OppositeOf(color)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"color": opp.Symbol()})
}

// InitBoard returns the serialized start position.
func (h *Handler) InitBoard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"board": game.NewInitialBoard().Serialize()})
}

// Score returns the disc counts of both sides.
func (h *Handler) Score(c *gin.Context) {
	req, b, ok := h.bindBoard(c)
	if !ok {
		return
	}
	computer, err := game.ParseColor(req.Computer)
	if err != nil {
		h.handleError(c, err)
		return
	}
	white, black := b.Score()
	r := game.ResultFor(b, computer, false)
	c.JSON(http.StatusOK, ScoreResponse{White: white, Black: black, Player: r.Player, Computer: r.Computer})
}

// Render returns the framed text board with the score line and, when the
// game is finished, the verdict.
func (h *Handler) Render(c *gin.Context) {
	req, b, ok := h.bindBoard(c)
	if !ok {
		return
	}
	computer, err := game.ParseColor(req.Computer)
	if err != nil {
		h.handleError(c, err)
		return
	}
	text := b.String() + game.ResultFor(b, computer, req.Finished).String() + "\n"
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Moves lists the legal moves of color.
func (h *Handler) Moves(c *gin.Context) {
	b, color, ok := h.bindBoardColor(c)
	if !ok {
		return
	}
	moves := game.LegalMoves(b, color)
	out := make([]MoveResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, MoveResponse{X: m.At.X, Y: m.At.Y, Flips: m.Flips})
	}
	c.JSON(http.StatusOK, gin.H{"moves": out})
}

// Possible reports whether color has any legal move.
func (h *Handler) Possible(c *gin.Context) {
	b, color, ok := h.bindBoardColor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"possible": game.HasAnyMove(b, color)})
}

// Check validates a move. Off-board points are simply not valid.
func (h *Handler) Check(c *gin.Context) {
	req, b, ok := h.bindBoard(c)
	if !ok {
		return
	}
	color, err := game.ParseColor(req.Color)
	if err != nil {
		h.handleError(c, err)
		return
	}
	p, err := game.NewPoint(req.X, req.Y)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "flips": 0})
		return
	}
	valid, n := game.IsValidMove(b, p, color)
	c.JSON(http.StatusOK, gin.H{"valid": valid, "flips": n})
}

// PlayerMove applies a human move after validating it.
func (h *Handler) PlayerMove(c *gin.Context) {
	req, b, ok := h.bindBoard(c)
	if !ok {
		return
	}
	color, err := game.ParseColor(req.Color)
	if err != nil {
		h.handleError(c, err)
		return
	}
	p, err := game.NewPoint(req.X, req.Y)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if valid, _ := game.IsValidMove(b, p, color); !valid {
		h.handleError(c, game.ErrInvalidMove)
		return
	}
	n, err := game.ApplyMove(b, p, color)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.log.WithFields(logrus.Fields{"color": color.Name(), "point": p.String(), "flips": n}).Debug("player move")
	c.JSON(http.StatusOK, gin.H{"board": b.Serialize(), "flips": n})
}

// ComputerMove lets the heuristic play for color.
func (h *Handler) ComputerMove(c *gin.Context) {
	b, color, ok := h.bindBoardColor(c)
	if !ok {
		return
	}
	mv, err := game.ComputerMove(b, color, h)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.log.WithFields(logrus.Fields{"color": color.Name(), "point": mv.At.String(), "flips": mv.Flips}).Debug("computer move")
	c.JSON(http.StatusOK, gin.H{
		"board": b.Serialize(),
		"x":     mv.At.X,
		"y":     mv.At.Y,
		"flips": mv.Flips,
	})
}

func (h *Handler) bindBoard(c *gin.Context) (BoardRequest, *game.Board, bool) {
	var req BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Warn("invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return req, nil, false
	}
	b, err := game.Deserialize(req.Board)
	if err != nil {
		h.handleError(c, err)
		return req, nil, false
	}
	return req, b, true
}

func (h *Handler) bindBoardColor(c *gin.Context) (*game.Board, game.CellState, bool) {
	req, b, ok := h.bindBoard(c)
	if !ok {
		return nil, game.Empty, false
	}
	color, err := game.ParseColor(req.Color)
	if err != nil {
		h.handleError(c, err)
		return nil, game.Empty, false
	}
	return b, color, true
}

// handleError 把规则引擎的错误映射成 HTTP 状态码
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, game.ErrSizeMismatch),
		errors.Is(err, game.ErrUnknownSymbol),
		errors.Is(err, game.ErrOutOfBounds),
		errors.Is(err, game.ErrInvalidColor),
		errors.Is(err, game.ErrNoOpposite):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrInvalidMove):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrNoLegalMove):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.WithError(err).WithField("contract", game.IsContractViolation(err)).Error("Unhandled internal server error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
	}
}
