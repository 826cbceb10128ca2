// 命令行对局：玩家对电脑，棋盘以文本框线打印
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"reversi_go/internal/config"
	"reversi_go/internal/game"
)

func main() {
	seed := flag.Int64("seed", 0, "随机种子（0=使用 REVERSI_SEED 或当前时间）")
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
	c := &console{
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
		rng: rand.New(rand.NewSource(*seed)),
	}
	if err := c.play(); err != nil {
		if errors.Is(err, io.EOF) {
			log.Info("input closed, bye")
			return
		}
		log.Fatalf("reversi: %v", err)
	}
}

type console struct {
	in    *bufio.Scanner
	out   io.Writer
	rng   game.Rand
	state *game.GameState
}

func (c *console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// chooseSide 询问玩家执白还是执黑
func (c *console) chooseSide() (game.CellState, error) {
	for {
		fmt.Fprintf(c.out, " %s - 1, %s - 2 ?\n", game.White, game.Black)
		line, err := c.readLine()
		if err != nil {
			return game.Empty, err
		}
		switch line {
		case "1":
			fmt.Fprintf(c.out, "Selected: %s\n", game.White)
			return game.White, nil
		case "2":
			fmt.Fprintf(c.out, "Selected: %s\n", game.Black)
			return game.Black, nil
		}
	}
}

// readPoint 读取 "x y"，越界或格式不对就重新询问
func (c *console) readPoint() (game.Point, error) {
	for {
		fmt.Fprintln(c.out, " x y ?")
		line, err := c.readLine()
		if err != nil {
			return game.Point{}, err
		}
		if p, ok := parsePoint(line); ok {
			return p, nil
		}
	}
}

func parsePoint(line string) (game.Point, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return game.Point{}, false
	}
	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return game.Point{}, false
	}
	p, err := game.NewPoint(x, y)
	return p, err == nil
}

func (c *console) printBoard(st *game.GameState, computer game.CellState) {
	fmt.Fprint(c.out, st.Board.String())
	fmt.Fprintln(c.out, game.ResultFor(st.Board, computer, st.GameOver))
}

func (c *console) play() error {
	player, err := c.chooseSide()
	if err != nil {
		return err
	}
	computer := game.Opponent(player)
	st := game.NewGameState()
	c.state = st
	c.printBoard(st, computer)

	for !st.GameOver {
		if !st.CanMove() {
			who := "Player"
			if st.CurrentPlayer == computer {
				who = "Computer"
			}
			fmt.Fprintf(c.out, "%s PASS\n", who)
			if err := st.Pass(); err != nil {
				return err
			}
			continue
		}

		if st.CurrentPlayer == computer {
			mv, err := st.ComputerMove(c.rng)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Computer has moved to %s, +%d score\n", mv.At, mv.Flips+1)
			c.printBoard(st, computer)
			continue
		}

		p, err := c.readPoint()
		if err != nil {
			return err
		}
		n, err := st.MakeMove(p)
		if errors.Is(err, game.ErrInvalidMove) {
			fmt.Fprintf(c.out, " %s -- is not valid move\n", p)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Player has moved to %s, +%d score\n", p, n+1)
		c.printBoard(st, computer)
	}
	c.printBoard(st, computer)
	return nil
}
