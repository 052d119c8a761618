// Command uci is the UCI shell: it parses commands on stdin and drives the
// search engine, printing "info"/"bestmove" responses on stdout.
// This is deliberately a thin I/O shell — the search engine in package
// search and the position representation in package board hold all the
// logic; this file owns only protocol parsing and process lifecycle.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tallow/goosegambit/board"
	"github.com/tallow/goosegambit/search"
)

func main() {
	uciLoop()
}

func uciLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	pos := board.Startpos()
	eng := search.NewEngine()

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name GooseGambit 0.1")
			fmt.Println("id author GooseGambit contributors")
			fmt.Println("option name Depth type spin default 10 min 1 max 30")
			fmt.Println("option name Hash type spin default 64 min 1 max 1024")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			pos = board.Startpos()
			eng.NewGame()
		case "debug":
			// accepted and ignored beyond acknowledging the token
			continue
		case "stop":
			eng.Stop()
		case "quit":
			return
		case "setoption":
			handleSetOption(eng, line)
		case "position":
			handlePosition(&pos, line)
		case "go":
			handleGo(eng, &pos, line)
		default:
			fmt.Println("info string Unknown command:", line)
		}
	}
}

func handleSetOption(eng *search.Engine, line string) {
	sc := bufio.NewScanner(strings.NewReader(line))
	sc.Split(bufio.ScanWords)
	sc.Scan() // "setoption"
	var name, value string
	for sc.Scan() {
		switch strings.ToLower(sc.Text()) {
		case "name":
			if sc.Scan() {
				name = strings.ToLower(sc.Text())
			}
		case "value":
			if sc.Scan() {
				value = sc.Text()
			}
		}
	}
	switch name {
	case "hash":
		if mb, err := strconv.Atoi(value); err == nil && mb > 0 {
			eng.HashMB = mb
			eng.TT.Resize(mb)
		}
	case "depth":
		if d, err := strconv.Atoi(value); err == nil && d > 0 {
			eng.MaxDepth = d
		}
	}
}

func handlePosition(pos *board.Position, line string) {
	sc := bufio.NewScanner(strings.NewReader(line))
	sc.Split(bufio.ScanWords)
	sc.Scan() // "position"
	if !sc.Scan() {
		fmt.Println("info string Malformed position command")
		return
	}
	switch strings.ToLower(sc.Text()) {
	case "startpos":
		*pos = board.Startpos()
		sc.Scan() // advance to "moves" if present
	case "fen":
		var fen strings.Builder
		for sc.Scan() && strings.ToLower(sc.Text()) != "moves" {
			fen.WriteString(sc.Text())
			fen.WriteByte(' ')
		}
		*pos = board.ParseFEN(fen.String())
	default:
		fmt.Println("info string Invalid position subcommand")
		return
	}

	if strings.ToLower(sc.Text()) != "moves" {
		return
	}
	for sc.Scan() {
		from, to, promo, err := board.ParseUCIMove(sc.Text())
		if err != nil {
			fmt.Println("info string Illegal move string:", sc.Text())
			continue
		}
		m, ok := pos.FindLegalMove(from, to, promo)
		if !ok {
			fmt.Println("info string Illegal move:", sc.Text())
			continue
		}
		next, ok := pos.MakeMove(m)
		if !ok {
			fmt.Println("info string Illegal move:", sc.Text())
			continue
		}
		*pos = next
	}
}

func handleGo(eng *search.Engine, pos *board.Position, line string) {
	sc := bufio.NewScanner(strings.NewReader(line))
	sc.Split(bufio.ScanWords)
	sc.Scan() // "go"

	var limits search.Limits
	for sc.Scan() {
		switch strings.ToLower(sc.Text()) {
		case "infinite":
			limits.Infinite = true
		case "depth":
			limits.Depth = nextInt(sc)
		case "movetime":
			limits.MoveTime = nextInt(sc)
		case "wtime":
			limits.WTime = nextInt(sc)
		case "btime":
			limits.BTime = nextInt(sc)
		case "winc":
			limits.WInc = nextInt(sc)
		case "binc":
			limits.BInc = nextInt(sc)
		case "movestogo":
			limits.MovesToGo = nextInt(sc)
		}
	}

	best := eng.Search(*pos, limits, func(info search.InfoLine) {
		fmt.Println(info.String())
	})
	fmt.Println("bestmove", best.String())
}

func nextInt(sc *bufio.Scanner) int {
	if !sc.Scan() {
		return 0
	}
	v, _ := strconv.Atoi(sc.Text())
	return v
}
