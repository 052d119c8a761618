package search

import (
	"testing"

	"github.com/tallow/goosegambit/board"
)

func play(t *testing.T, pos board.Position, uciMoves ...string) board.Position {
	t.Helper()
	for _, mv := range uciMoves {
		from, to, promo, err := board.ParseUCIMove(mv)
		if err != nil {
			t.Fatalf("ParseUCIMove(%s): %v", mv, err)
		}
		m, ok := pos.FindLegalMove(from, to, promo)
		if !ok {
			t.Fatalf("move %s not legal", mv)
		}
		next, ok := pos.MakeMove(m)
		if !ok {
			t.Fatalf("move %s reported illegal by MakeMove", mv)
		}
		pos = next
	}
	return pos
}

func TestFoolsMateFindsMateInOne(t *testing.T) {
	pos := play(t, board.Startpos(), "f2f3", "e7e5", "g2g4")
	eng := NewEngine()
	best := eng.Search(pos, Limits{Depth: 4}, nil)
	if best.String() != "d8h4" {
		t.Fatalf("bestmove = %s, want d8h4 (mate in 1)", best.String())
	}
}

func TestSearchReturnsLegalOpeningMove(t *testing.T) {
	pos := board.Startpos()
	eng := NewEngine()
	best := eng.Search(pos, Limits{Depth: 1}, nil)
	if best == board.NullMove {
		t.Fatalf("expected a legal opening move, got null move")
	}
	from, to, promo, err := board.ParseUCIMove(best.String())
	if err != nil {
		t.Fatalf("bestmove %s does not parse as a UCI move: %v", best.String(), err)
	}
	if _, ok := pos.FindLegalMove(from, to, promo); !ok {
		t.Fatalf("bestmove %s is not a legal move from the start position", best.String())
	}
}

func TestNoLegalMovesReturnsNullMove(t *testing.T) {
	// This package cannot see board's unexported fields, so the stalemate
	// position of board_test.go's TestStalemateHasNoLegalMoves cannot be
	// built here. Instead the position is reached through UCI moves: after
	// Fool's mate white is checkmated and has no legal moves, and search
	// must return the null move.
	var pos board.Position
	pos = play(t, board.Startpos(), "f2f3", "e7e5", "g2g4", "d8h4")
	eng := NewEngine()
	best := eng.Search(pos, Limits{Depth: 2}, nil)
	if best != board.NullMove {
		t.Fatalf("expected null move after checkmate, got %s", best.String())
	}
}

func TestEvaluationSymmetryUnderColorSwap(t *testing.T) {
	pos := play(t, board.Startpos(), "e2e4", "e7e5", "g1f3", "b8c6")
	score := Evaluate(&pos)

	mirrored := mirrorAndSwapColors(pos)
	mirroredScore := Evaluate(&mirrored)

	if score != -mirroredScore {
		t.Fatalf("evaluation not symmetric under color swap: %d vs %d", score, mirroredScore)
	}
}

// mirrorAndSwapColors builds a position with every piece moved to its
// vertically mirrored square and side swapped.
func mirrorAndSwapColors(pos board.Position) board.Position {
	return pos.Mirror()
}
