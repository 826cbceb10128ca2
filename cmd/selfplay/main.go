// cmd/selfplay/main.go
// 电脑对电脑批量对局：每局一行 JSON，便于统计启发式的胜率和平均比分
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"reversi_go/internal/config"
	"reversi_go/internal/game"
)

// gameRecord 是一局的结果
type gameRecord struct {
	Game    int    `json:"game"`
	Winner  string `json:"winner"`
	White   int    `json:"white"`
	Black   int    `json:"black"`
	Moves   int    `json:"moves"`
	Passes  int    `json:"passes"`
	Opening int    `json:"opening,omitempty"`
	Final   string `json:"final"`
}

func main() {
	numGames := flag.Int("n", 100, "要进行的对局数")
	workers := flag.Int("workers", 0, "并发局数（默认=CPU/2，至少1）")
	opening := flag.Int("opening", 0, "每局开头随机走的步数")
	seed := flag.Int64("seed", 0, "随机种子（0=使用 REVERSI_SEED 或当前时间）")
	out := flag.String("out", "-", "输出文件，- 表示标准输出")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := config.NewLogger(cfg)
	game.SetLogger(log)

	if *seed == 0 {
		*seed = cfg.EffectiveSeed()
	}
	if *workers <= 0 {
		*workers = max(runtime.NumCPU()/2, 1)
	}

	var w io.Writer = os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	log.WithFields(logrus.Fields{
		"games":   *numGames,
		"workers": *workers,
		"opening": *opening,
		"seed":    *seed,
	}).Info("selfplay start")

	start := time.Now()
	stats, err := run(context.Background(), w, *numGames, *workers, *opening, *seed)
	if err != nil {
		log.Fatalf("selfplay: %v", err)
	}
	log.WithFields(logrus.Fields{
		"white_wins": stats.whiteWins,
		"black_wins": stats.blackWins,
		"draws":      stats.draws,
		"elapsed":    time.Since(start).String(),
	}).Info("selfplay done")
}

type summary struct {
	whiteWins, blackWins, draws int
}

// run 启动 workers 个对局协程，结果由单一写协程按完成顺序输出
func run(ctx context.Context, w io.Writer, numGames, workers, opening int, seed int64) (summary, error) {
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int, workers*2)
	records := make(chan gameRecord, workers)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	players := make(chan struct{})
	for wid := 0; wid < workers; wid++ {
		r := rand.New(rand.NewSource(seed + int64(wid)))
		g.Go(func() error {
			defer func() { players <- struct{}{} }()
			for id := range jobs {
				rec, err := playOneGame(id, opening, r)
				if err != nil {
					return err
				}
				select {
				case records <- rec:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		for i := 0; i < workers; i++ {
			<-players
		}
		close(records)
	}()

	var sum summary
	g.Go(func() error {
		bw := bufio.NewWriter(w)
		enc := json.NewEncoder(bw)
		for rec := range records {
			switch rec.Winner {
			case game.White.Name():
				sum.whiteWins++
			case game.Black.Name():
				sum.blackWins++
			default:
				sum.draws++
			}
			if err := enc.Encode(rec); err != nil {
				return err
			}
		}
		return bw.Flush()
	})

	err := g.Wait()
	return sum, err
}

// playOneGame 打完一局；opening 步之内随机落子，之后双方都用启发式
func playOneGame(id, opening int, r *rand.Rand) (gameRecord, error) {
	const maxTurns = 200
	st := game.NewGameState()
	moves, passes := 0, 0

	for turn := 0; !st.GameOver; turn++ {
		if turn >= maxTurns {
			return gameRecord{}, fmt.Errorf("game %d did not finish within %d turns", id, maxTurns)
		}
		if !st.CanMove() {
			if err := st.Pass(); err != nil {
				return gameRecord{}, err
			}
			passes++
			continue
		}
		if moves < opening {
			legal := st.LegalMoves()
			if _, err := st.MakeMove(legal[r.Intn(len(legal))].At); err != nil {
				return gameRecord{}, err
			}
		} else if _, err := st.ComputerMove(r); err != nil {
			return gameRecord{}, err
		}
		moves++
	}

	return gameRecord{
		Game:    id,
		Winner:  st.Winner.Name(),
		White:   st.ScoreWhite,
		Black:   st.ScoreBlack,
		Moves:   moves,
		Passes:  passes,
		Opening: opening,
		Final:   st.Board.Serialize(),
	}, nil
}
