package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"reversi_go/internal/game"
)

// pixelToPoint 把屏幕像素坐标反算成棋盘坐标
func pixelToPoint(fx, fy int) (game.Point, bool) {
	dx, dy := fx-boardOriginX, fy-boardOriginY
	if dx < 0 || dy < 0 {
		return game.Point{}, false
	}
	p, err := game.NewPoint(dx/CellSize+1, game.BoardSize-dy/CellSize)
	if err != nil {
		return game.Point{}, false
	}
	return p, true
}

// handleInput 处理人类玩家的鼠标落子
func (gs *GameScreen) handleInput(now time.Time) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p, ok := pixelToPoint(mx, my)
	if !ok {
		return
	}
	gs.play(p, now)
}
