// cmd/bench_perf/main.go
// 整局性能测试：电脑对电脑连续对局，同时写 CPU profile
package main

import (
	"flag"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/sirupsen/logrus"

	"reversi_go/internal/config"
	"reversi_go/internal/game"
)

func main() {
	games := flag.Int("games", 200, "对局数")
	profile := flag.String("profile", "cpu_reversi.prof", "CPU profile 输出文件，空字符串表示不采样")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := config.NewLogger(cfg)
	game.SetLogger(log)

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	rng := rand.New(rand.NewSource(cfg.EffectiveSeed()))
	start := time.Now()
	moves := 0
	for i := 0; i < *games; i++ {
		n, err := playGame(rng)
		if err != nil {
			log.WithError(err).WithField("game", i).Error("game aborted")
			return
		}
		moves += n
	}
	elapsed := time.Since(start)

	log.WithFields(logrus.Fields{
		"games":        *games,
		"moves":        moves,
		"elapsed":      elapsed.String(),
		"moves_per_ms": float64(moves) / float64(max(elapsed.Milliseconds(), 1)),
	}).Info("benchmark done")
	if *profile != "" {
		log.Infof("profile saved to %s, view with 'go tool pprof -http=:8080 %s'", *profile, *profile)
	}
}

// playGame 双方都用启发式下完一局，返回落子数
func playGame(rng game.Rand) (int, error) {
	st := game.NewGameState()
	moves := 0
	for !st.GameOver {
		if !st.CanMove() {
			if err := st.Pass(); err != nil {
				return moves, err
			}
			continue
		}
		if _, err := st.ComputerMove(rng); err != nil {
			return moves, err
		}
		moves++
	}
	return moves, nil
}
