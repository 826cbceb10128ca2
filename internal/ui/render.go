package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"reversi_go/internal/game"
)

var (
	backgroundColor = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}
	feltColor       = color.RGBA{0x1f, 0x7a, 0x3c, 0xff}
	gridColor       = color.RGBA{0x0b, 0x3d, 0x1c, 0xff}
	labelColor      = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
)

// bakeBoard 预渲染棋盘底色、网格和四个星位
func bakeBoard() *ebiten.Image {
	img := ebiten.NewImage(boardPixels, boardPixels)
	img.Fill(feltColor)

	for i := 0; i <= game.BoardSize; i++ {
		v := float32(i * CellSize)
		vector.StrokeLine(img, v, 0, v, boardPixels, 2, gridColor, true)
		vector.StrokeLine(img, 0, v, boardPixels, v, 2, gridColor, true)
	}
	for _, s := range [][2]int{{2, 2}, {2, 6}, {6, 2}, {6, 6}} {
		vector.DrawFilledCircle(img, float32(s[0]*CellSize), float32(s[1]*CellSize), 4, gridColor, true)
	}
	return img
}

// cellOrigin 返回格子左上角的屏幕坐标；第 8 行在最上方
func cellOrigin(p game.Point) (float64, float64) {
	col := p.X - 1
	row := game.BoardSize - p.Y
	return float64(boardOriginX + col*CellSize), float64(boardOriginY + row*CellSize)
}

// drawSprite 把贴图居中画到格子里
func drawSprite(dst, img *ebiten.Image, p game.Point) {
	x, y := cellOrigin(p)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(x+float64(CellSize-w)/2, y+float64(CellSize-h)/2)
	dst.DrawImage(img, op)
}

func (gs *GameScreen) drawPieces(dst *ebiten.Image) {
	for _, p := range game.AllPoints() {
		c := gs.state.Board.Get(p)
		if img := gs.pieceImages[c]; img != nil {
			drawSprite(dst, img, p)
		}
	}
}

func (gs *GameScreen) drawHints(dst *ebiten.Image) {
	for _, m := range gs.state.LegalMoves() {
		drawSprite(dst, gs.hintImage, m.At)
	}
}

func (gs *GameScreen) drawStatus(dst *ebiten.Image) {
	// 坐标标注：x 在下方，y 在左侧
	for i := 1; i <= game.BoardSize; i++ {
		x, _ := cellOrigin(game.Point{X: i, Y: 1})
		text.Draw(dst, strconv.Itoa(i), gs.fontFace, int(x)+CellSize/2-3, boardOriginY+boardPixels+16, labelColor)
		_, y := cellOrigin(game.Point{X: 1, Y: i})
		text.Draw(dst, strconv.Itoa(i), gs.fontFace, boardOriginX-16, int(y)+CellSize/2+4, labelColor)
	}

	st := gs.state
	score := fmt.Sprintf("White: %d     Black: %d", st.ScoreWhite, st.ScoreBlack)
	text.Draw(dst, score, gs.fontFace, 20, 24, color.White)

	var line string
	switch {
	case st.GameOver && st.Winner == game.Empty:
		line = "Game over: draw. Press R to play again"
	case st.GameOver:
		line = fmt.Sprintf("Game over: %s wins. Press R to play again", st.Winner.Name())
	case gs.isComputerTurn():
		line = fmt.Sprintf("Computer (%s) is thinking...", st.CurrentPlayer.Name())
	default:
		line = fmt.Sprintf("%s to move", st.CurrentPlayer.Name())
	}
	text.Draw(dst, line, gs.fontFace, 20, WindowHeight-14, color.White)
	if gs.message != "" {
		text.Draw(dst, gs.message, gs.fontFace, WindowWidth/2, 24, labelColor)
	}
}
