package search

import "github.com/tallow/goosegambit/board"

// maxQDepth bounds the capture-only extension at 6 plies past the nominal
// horizon.
const maxQDepth = 6

// quiescence runs stand-pat, depth cutoff, delta pruning, capture-only move
// generation and ordering, and fail-hard alpha-beta.
func (e *Engine) quiescence(pos *board.Position, alpha, beta int32, qdepth int) int32 {
	e.QNodes++

	standPat := Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if qdepth <= -maxQDepth {
		return standPat
	}

	moves := pos.Generate(true)
	scored := e.orderMoves(pos, moves, 0, Entry{}, false)

	for _, sm := range scored {
		m := sm.move

		gain := int32(200)
		if m.Piece() != board.Pawn {
			gain = 900
		}
		if qdepth < -1 && standPat+gain < alpha {
			continue
		}

		child, ok := pos.MakeMove(m)
		if !ok {
			continue
		}
		score := -e.quiescence(&child, -beta, -alpha, qdepth-1)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
