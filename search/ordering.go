package search

import "github.com/tallow/goosegambit/board"

// scoredMove pairs a move with its ordering score.
type scoredMove struct {
	move  board.Move
	score int32
}

const (
	scoreTTMove     int32 = 1000000
	scoreCapture    int32 = 100000
	scoreQueenPromo int32 = 80000
	scoreKiller     int32 = 90000
)

// mvvValue is the MVV-LVA ordering table, distinct from board.Value: it
// only needs to rank victims/attackers relative to each other, not to score
// material, so knight and bishop are given the same weight.
var mvvValue = [7]int32{0, 100, 300, 300, 500, 900, 10000}

// orderMoves scores every move (TT move, MVV-LVA captures, queen
// promotions, killers, history) and selection-sorts in place, descending.
func (e *Engine) orderMoves(pos *board.Position, moves []board.Move, ply int, ttEntry Entry, hasTT bool) []scoredMove {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: e.scoreMove(pos, m, ply, ttEntry, hasTT)}
	}
	// Selection sort rather than sort.Slice: only the first few moves
	// usually matter before a cutoff ends the loop early.
	for i := 0; i < len(scored); i++ {
		best := i
		for j := i + 1; j < len(scored); j++ {
			if scored[j].score > scored[best].score {
				best = j
			}
		}
		scored[i], scored[best] = scored[best], scored[i]
	}
	return scored
}

func (e *Engine) scoreMove(pos *board.Position, m board.Move, ply int, ttEntry Entry, hasTT bool) int32 {
	if hasTT && ttEntry.MatchesMove(m) {
		return scoreTTMove
	}
	var s int32
	if m.IsCapture() {
		victim := m.Captured()
		if m.Flag() == board.FlagEnPassant {
			victim = board.Pawn
		}
		attacker := m.Piece()
		s += scoreCapture + 10*mvvValue[victim] - mvvValue[attacker]
	}
	if m.Promo() == board.Queen {
		s += scoreQueenPromo
	}
	if s == 0 {
		if e.Killers.IsKiller(ply, m) {
			return scoreKiller
		}
		return e.History.Score(pos.Side(), m.From(), m.To())
	}
	return s
}

// isQuiet reports whether a move is neither a capture nor a promotion —
// the class of move eligible for killer/history bookkeeping and for late
// move reductions.
func isQuiet(m board.Move) bool {
	return !m.IsCapture() && m.Promo() == board.NoKind
}
