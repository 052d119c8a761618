// Command perft counts leaf nodes at a fixed depth from a position,
// independent of search — used to validate move generation
// against the known standard-start-position counts 20, 400, 8902, 197281,
// 4865609 for depths 1-5.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/tallow/goosegambit/board"
)

func main() {
	depth := flag.Int("depth", 4, "perft depth")
	flag.Parse()

	pos := board.Startpos()
	start := time.Now()
	nodes := perft(&pos, *depth)
	elapsed := time.Since(start)

	fmt.Printf("perft(%d) = %d  (%.2fs, %.0f nps)\n", *depth, nodes, elapsed.Seconds(), float64(nodes)/elapsed.Seconds())
}

func perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := pos.Generate(false)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child, ok := pos.MakeMove(m)
		if !ok {
			continue
		}
		nodes += perft(&child, depth-1)
	}
	return nodes
}
