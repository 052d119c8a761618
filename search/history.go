package search

import "github.com/tallow/goosegambit/board"

// HistoryTable is score[side][from][to], incremented by depth^2
// on quiet beta cutoffs and aged (halved across the board) once any entry
// exceeds 100000.
type HistoryTable [2][64][64]int32

const historyAgeThreshold = 100000

func (h *HistoryTable) Add(side board.Side, from, to board.Square, depth int) {
	v := &h[side][from][to]
	*v += int32(depth * depth)
	if *v > historyAgeThreshold {
		h.age()
	}
}

func (h *HistoryTable) age() {
	for s := 0; s < 2; s++ {
		for f := 0; f < 64; f++ {
			for t := 0; t < 64; t++ {
				h[s][f][t] /= 2
			}
		}
	}
}

func (h *HistoryTable) Score(side board.Side, from, to board.Square) int32 {
	return h[side][from][to]
}
