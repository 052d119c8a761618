package board

import (
	"math/bits"
	"math/rand"
)

// Zobrist keys are generated once at init from a fixed seed, using
// math/rand rather than crypto/rand, so hash coherence tests are
// reproducible across runs.
var (
	zobristPiece   [2][7][64]uint64
	zobristCastle  [16]uint64
	zobristEP      [8]uint64
	zobristSideKey uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))
	for side := 0; side < 2; side++ {
		for kind := Pawn; kind <= King; kind++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[side][kind][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for i := range zobristEP {
		zobristEP[i] = rnd.Uint64()
	}
	zobristSideKey = rnd.Uint64()
}

func pieceKey(side Side, kind PieceKind, sq Square) uint64 {
	return zobristPiece[side][kind][sq]
}

// ZobristFromScratch recomputes the Zobrist key from the position's fields
// without relying on the incrementally maintained hash. Used by tests to
// verify hash coherence against the incrementally maintained hash.
func (p *Position) ZobristFromScratch() uint64 {
	var key uint64
	for side := White; side <= Black; side++ {
		for kind := Pawn; kind <= King; kind++ {
			bb := p.pieces[side][kind]
			for bb != 0 {
				sq := bb.pop()
				key ^= pieceKey(side, kind, sq)
			}
		}
	}
	key ^= zobristCastle[p.castle]
	if p.ep != NoSquare {
		key ^= zobristEP[p.ep.File()]
	}
	if p.side == Black {
		key ^= zobristSideKey
	}
	return key
}

// pop removes and returns the least-significant set square from the
// bitboard, mutating it in place.
func (b *Bitboard) pop() Square {
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}
