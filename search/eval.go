package search

import (
	"math/bits"

	"github.com/tallow/goosegambit/board"
)

// Evaluate scores pos from the side-to-move's perspective: material, a
// king-safety bonus/penalty for castled vs uncastled kings, centre-pawn
// control, and a rank-bonus approximation of passed pawns — a known
// simplification, since it does not check for opposing pawns on adjacent
// files the way a real passed-pawn test would.
func Evaluate(pos *board.Position) int32 {
	var score int32
	for side := board.White; side <= board.Black; side++ {
		sign := int32(1)
		if side == board.Black {
			sign = -1
		}
		for kind := board.Pawn; kind <= board.King; kind++ {
			count := popcount(pos.Pieces(side, kind))
			score += sign * count * board.Value[kind]
		}
		score += sign * kingSafety(pos, side)
		score += sign * rankBonus(pos, side)
	}
	score += centreControl(pos)

	if pos.Side() == board.Black {
		score = -score
	}
	return score
}

func popcount(b board.Bitboard) int32 {
	n := int32(0)
	for b != 0 {
		b &= b - 1
		n++
	}
	return n
}

// kingSafety gives +40 for a king already on a castled square (g1/c1 for
// White, g8/c8 for Black) and -20 for an uncastled king still on e1/e8.
func kingSafety(pos *board.Position, side board.Side) int32 {
	ksq := pos.KingSquare(side)
	if ksq == board.NoSquare {
		return 0
	}
	var castledA, castledB, home board.Square
	if side == board.White {
		castledA, castledB, home = 6, 2, 4
	} else {
		castledA, castledB, home = 62, 58, 60
	}
	switch ksq {
	case castledA, castledB:
		return 40
	case home:
		return -20
	}
	return 0
}

// centreControl is 20*(white central pawns - black central pawns) on the
// four central squares d4/e4/d5/e5.
func centreControl(pos *board.Position) int32 {
	const centre = board.Bitboard(1)<<27 | board.Bitboard(1)<<28 | board.Bitboard(1)<<35 | board.Bitboard(1)<<36
	white := popcount(pos.Pieces(board.White, board.Pawn) & centre)
	black := popcount(pos.Pieces(board.Black, board.Pawn) & centre)
	return 20 * (white - black)
}

// rankBonus gives each pawn past the middle of the board (rank)*15 credit
// toward its queening rank: white pawns on rank >= 5 (0-indexed) get
// (rank-3)*15, black pawns on rank <= 4 get (4-rank)*15.
func rankBonus(pos *board.Position, side board.Side) int32 {
	var bonus int32
	pawns := pos.Pieces(side, board.Pawn)
	for pawns != 0 {
		sq := popLSB(&pawns)
		rank := sq.Rank()
		if side == board.White && rank >= 5 {
			bonus += int32(rank-3) * 15
		} else if side == board.Black && rank <= 4 {
			bonus += int32(4-rank) * 15
		}
	}
	return bonus
}

func popLSB(b *board.Bitboard) board.Square {
	sq := board.Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}
