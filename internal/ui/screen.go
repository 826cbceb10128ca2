// Package ui is the ebiten front end: an 8x8 board, move hints and a
// background computer opponent.
package ui

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"reversi_go/internal/assets"
	"reversi_go/internal/game"
)

const (
	// 窗口尺寸
	WindowWidth  = 800
	WindowHeight = 600
	// 单格像素
	CellSize = 64
)

const (
	boardPixels  = CellSize * game.BoardSize
	boardOriginX = (WindowWidth - boardPixels) / 2
	boardOriginY = 48
)

// Options configures a GameScreen.
type Options struct {
	AIEnabled bool           // true=人机；false=人人
	Human     game.CellState // 人机模式下玩家执子颜色
	AIDelay   time.Duration  // 电脑落子前的停顿
	Seed      int64
	ShowHints bool
	Log       *logrus.Logger
}

type aiResult struct {
	move game.Move
	err  error
}

// GameScreen 实现 ebiten.Game 接口，管理游戏主循环和渲染
type GameScreen struct {
	opts  Options
	log   *logrus.Logger
	state *game.GameState
	rng   *rand.Rand // 只在主循环中使用，为每次 AI 计算派生独立随机源

	pieceImages  map[game.CellState]*ebiten.Image
	hintImage    *ebiten.Image
	lastImage    *ebiten.Image
	boardBaked   *ebiten.Image // 预渲染好的棋盘底图
	fontFace     font.Face
	lastMove     *game.Point
	message      string
	aiDelayUntil time.Time

	aiResultCh chan aiResult // 后台AI结果传回（容量1）
	aiCancelCh chan struct{} // 取消信号（close 即取消）
	aiRunning  bool
}

// NewGameScreen 构造并初始化游戏界面
func NewGameScreen(opts Options) (*GameScreen, error) {
	if opts.AIEnabled && !opts.Human.IsPlayer() {
		return nil, fmt.Errorf("human colour: %w", game.ErrInvalidColor)
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	gs := &GameScreen{
		opts:        opts,
		log:         opts.Log,
		state:       game.NewGameState(),
		rng:         rand.New(rand.NewSource(opts.Seed)),
		pieceImages: make(map[game.CellState]*ebiten.Image),
		fontFace:    basicfont.Face7x13,
		aiResultCh:  make(chan aiResult, 1),
		aiCancelCh:  make(chan struct{}),
	}

	var err error
	// 棋子贴图略小于格子
	const disc = CellSize - 8
	if gs.pieceImages[game.White], err = assets.LoadSVG("white_disc", disc, disc); err != nil {
		return nil, err
	}
	if gs.pieceImages[game.Black], err = assets.LoadSVG("black_disc", disc, disc); err != nil {
		return nil, err
	}
	if gs.hintImage, err = assets.LoadSVG("move_hint", CellSize, CellSize); err != nil {
		return nil, err
	}
	if gs.lastImage, err = assets.LoadSVG("last_move", CellSize, CellSize); err != nil {
		return nil, err
	}
	gs.boardBaked = bakeBoard()
	gs.aiDelayUntil = time.Now().Add(opts.AIDelay)
	return gs, nil
}

func (gs *GameScreen) isComputerTurn() bool {
	return gs.opts.AIEnabled && gs.state.CurrentPlayer != gs.opts.Human
}

// Update 更新游戏状态
func (gs *GameScreen) Update() error {
	now := time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gs.restart()
		return nil
	}

	if gs.state.GameOver {
		gs.cancelAI()
		ensurePerf(false)
		return nil
	}
	enterPerf()

	if now.Before(gs.aiDelayUntil) && (gs.isComputerTurn() || !gs.state.CanMove()) {
		return nil
	}

	// 当前方无子可下：自动 pass
	if !gs.state.CanMove() {
		player := gs.state.CurrentPlayer
		if err := gs.state.Pass(); err != nil {
			gs.log.WithError(err).Error("pass failed")
			return nil
		}
		gs.message = fmt.Sprintf("%s has no legal move and passes", player.Name())
		gs.log.WithField("color", player.Name()).Info("pass")
		if gs.state.GameOver {
			gs.logResult()
		}
		gs.aiDelayUntil = now.Add(gs.opts.AIDelay)
		return nil
	}

	if gs.isComputerTurn() {
		gs.updateComputer(now)
		return nil
	}

	gs.handleInput(now)
	return nil
}

func (gs *GameScreen) updateComputer(now time.Time) {
	if !gs.aiRunning {
		gs.aiRunning = true
		gs.aiCancelCh = make(chan struct{})
		gs.aiResultCh = make(chan aiResult, 1)
		go func(b *game.Board, player game.CellState, rng *rand.Rand, out chan<- aiResult, cancel <-chan struct{}) {
			mv, err := game.SelectMove(b, player, rng)
			select {
			case <-cancel:
				return
			default:
			}
			select {
			case out <- aiResult{move: mv, err: err}:
			default:
			}
		}(gs.state.Board.Clone(), gs.state.CurrentPlayer, rand.New(rand.NewSource(gs.rng.Int63())), gs.aiResultCh, gs.aiCancelCh)
		return
	}

	select {
	case res := <-gs.aiResultCh:
		gs.aiRunning = false
		if res.err != nil {
			gs.log.WithError(res.err).Error("computer move failed")
			return
		}
		gs.play(res.move.At, now)
	default:
	}
}

// play 执行一步落子并记录最后一手
func (gs *GameScreen) play(p game.Point, now time.Time) bool {
	player := gs.state.CurrentPlayer
	n, err := gs.state.MakeMove(p)
	if err != nil {
		if errors.Is(err, game.ErrInvalidMove) {
			gs.message = fmt.Sprintf("%s is not a legal move", p)
		} else {
			gs.log.WithError(err).Error("move failed")
		}
		return false
	}
	gs.lastMove = &p
	gs.message = fmt.Sprintf("%s played %s, %d flipped", player.Name(), p, n)
	gs.log.WithFields(logrus.Fields{"color": player.Name(), "point": p.String(), "flips": n}).Debug("move")
	gs.aiDelayUntil = now.Add(gs.opts.AIDelay)
	if gs.state.GameOver {
		gs.logResult()
	}
	return true
}

func (gs *GameScreen) logResult() {
	gs.log.WithFields(logrus.Fields{
		"white":  gs.state.ScoreWhite,
		"black":  gs.state.ScoreBlack,
		"winner": gs.state.Winner.Name(),
	}).Info("game over")
}

func (gs *GameScreen) cancelAI() {
	if gs.aiRunning {
		close(gs.aiCancelCh)
		gs.aiRunning = false
	}
}

func (gs *GameScreen) restart() {
	gs.cancelAI()
	gs.state.Reset()
	gs.lastMove = nil
	gs.message = "new game"
	gs.aiDelayUntil = time.Now().Add(gs.opts.AIDelay)
	gs.log.Info("game restarted")
}

// Draw 每帧渲染：棋盘、棋子、提示和状态栏
func (gs *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(boardOriginX, boardOriginY)
	screen.DrawImage(gs.boardBaked, op)

	gs.drawPieces(screen)
	if gs.opts.ShowHints && !gs.isComputerTurn() && !gs.state.GameOver {
		gs.drawHints(screen)
	}
	if gs.lastMove != nil {
		drawSprite(screen, gs.lastImage, *gs.lastMove)
	}
	gs.drawStatus(screen)
}

// Layout 定义窗口尺寸
func (gs *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}
