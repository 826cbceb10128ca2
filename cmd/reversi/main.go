package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"reversi_go/internal/config"
	"reversi_go/internal/game"
	"reversi_go/internal/ui"
)

func main() {
	const screenScale = 1

	// 启动参数
	modeFlag := flag.String("mode", "pve", "游戏模式: pve(人机) 或 pvp(人人)")
	sideFlag := flag.String("side", "white", "人机模式下玩家执子: white(先手) 或 black")
	// 支持 -tip / -tips 两个别名
	hintsFlag := flag.Bool("tip", true, "是否显示合法落点")
	flag.BoolVar(hintsFlag, "tips", true, "是否显示合法落点 (同 -tip)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := config.NewLogger(cfg)
	game.SetLogger(log)

	human, err := game.ParseColor(*sideFlag)
	if err != nil {
		log.Fatalf("-side: %v", err)
	}

	screen, err := ui.NewGameScreen(ui.Options{
		AIEnabled: *modeFlag == "pve",
		Human:     human,
		AIDelay:   cfg.AIDelay,
		Seed:      cfg.EffectiveSeed(),
		ShowHints: *hintsFlag,
		Log:       log,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(ui.WindowWidth*screenScale, ui.WindowHeight*screenScale)
	ebiten.SetWindowTitle("Reversi")

	if err := ebiten.RunGame(screen); err != nil {
		log.Fatal(err)
	}
}
