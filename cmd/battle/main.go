// cmd/battle/main.go
// 策略对战：两种选点策略轮流先手，统计胜负并把每一手的子数差写成 CSV
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"reversi_go/internal/config"
	"reversi_go/internal/game"
)

// strategy 为当前方挑一个合法点
type strategy func(b *game.Board, mover game.CellState, rng game.Rand) (game.Point, error)

var strategies = map[string]strategy{
	// 避免送角、角优先、最多翻子
	"heuristic": func(b *game.Board, mover game.CellState, rng game.Rand) (game.Point, error) {
		mv, err := game.SelectMove(b, mover, rng)
		return mv.At, err
	},
	// 只看翻子数
	"greedy": func(b *game.Board, mover game.CellState, rng game.Rand) (game.Point, error) {
		moves := game.LegalMoves(b, mover)
		if len(moves) == 0 {
			return game.Point{}, game.ErrNoLegalMove
		}
		best := game.BestMoves(b, mover, moves, false)
		return best[rng.Intn(len(best))], nil
	},
	"random": func(b *game.Board, mover game.CellState, rng game.Rand) (game.Point, error) {
		moves := game.LegalMoves(b, mover)
		if len(moves) == 0 {
			return game.Point{}, game.ErrNoLegalMove
		}
		return moves[rng.Intn(len(moves))].At, nil
	},
}

type frameRow struct {
	ply   int
	empty int
	diff  int    // White - Black
	tag   string // 执棋方策略名
}

// playOneGame 下完一局：firstName 执先手（白），secondName 执黑
func playOneGame(first, second string, rng game.Rand) (game.CellState, []frameRow, error) {
	st := game.NewGameState()
	names := map[game.CellState]string{game.First: first, game.Second: second}
	frames := make([]frameRow, 0, 64)

	for ply := 1; !st.GameOver; ply++ {
		if !st.CanMove() {
			if err := st.Pass(); err != nil {
				return game.Empty, nil, err
			}
			continue
		}
		tag := names[st.CurrentPlayer]
		p, err := strategies[tag](st.Board, st.CurrentPlayer, rng)
		if err != nil {
			return game.Empty, nil, err
		}
		if _, err := st.MakeMove(p); err != nil {
			return game.Empty, nil, err
		}
		frames = append(frames, frameRow{
			ply:   ply,
			empty: game.BoardSize*game.BoardSize - st.Board.Len(),
			diff:  st.ScoreWhite - st.ScoreBlack,
			tag:   tag,
		})
	}
	return st.Winner, frames, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Sync()
}

func main() {
	var (
		games  = flag.Int("games", 100, "对战总局数")
		nameA  = flag.String("a", "heuristic", "策略 A: heuristic / greedy / random")
		nameB  = flag.String("b", "greedy", "策略 B: heuristic / greedy / random")
		outCSV = flag.String("out", "battle_samples.csv", "采样CSV输出路径，空字符串表示不写")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := config.NewLogger(cfg)
	game.SetLogger(log)

	for _, n := range []string{*nameA, *nameB} {
		if _, ok := strategies[n]; !ok {
			log.Fatalf("unknown strategy %q", n)
		}
	}

	rng := rand.New(rand.NewSource(cfg.EffectiveSeed()))
	aWins, bWins, draws := 0, 0, 0
	rows := [][]string{{"game", "ply", "empties", "piece_diff", "mover"}}

	for g := 1; g <= *games; g++ {
		// 奇数局 A 先手，偶数局 B 先手
		first, second := *nameA, *nameB
		aColor := game.First
		if g%2 == 0 {
			first, second = second, first
			aColor = game.Second
		}

		winner, frames, err := playOneGame(first, second, rng)
		if err != nil {
			log.WithError(err).WithField("game", g).Fatal("game aborted")
		}
		switch winner {
		case game.Empty:
			draws++
		case aColor:
			aWins++
		default:
			bWins++
		}

		for _, fr := range frames {
			rows = append(rows, []string{
				strconv.Itoa(g),
				strconv.Itoa(fr.ply),
				strconv.Itoa(fr.empty),
				strconv.Itoa(fr.diff),
				fr.tag,
			})
		}
		if g%10 == 0 {
			log.Infof("进度 %d/%d | %s胜:%d %s胜:%d 平:%d", g, *games, *nameA, aWins, *nameB, bWins, draws)
		}
	}

	log.WithFields(logrus.Fields{
		"games":          *games,
		*nameA + "_wins": aWins,
		*nameB + "_wins": bWins,
		"draws":          draws,
	}).Info(fmt.Sprintf("%s vs %s finished", *nameA, *nameB))

	if *outCSV != "" {
		if err := writeCSV(*outCSV, rows); err != nil {
			log.Fatalf("写CSV失败: %v", err)
		}
		log.Infof("采样已写入: %s（列: game, ply, empties, piece_diff, mover）", *outCSV)
	}
}
