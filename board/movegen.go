package board

// FindLegalMove locates the legal move matching (from, to, promo) — the
// shape a UCI move string parses to — so the caller never has to construct
// a Move's piece/captured/flag fields itself.
func (p *Position) FindLegalMove(from, to Square, promo PieceKind) (Move, bool) {
	for _, m := range p.Generate(false) {
		if m.From() == from && m.To() == to && m.Promo() == promo {
			return m, true
		}
	}
	return NullMove, false
}

// Generate produces all legal moves of p.side. When capturesOnly is true,
// only captures (including en-passant and promotion-capturing) are
// produced — used by quiescence search.
func (p *Position) Generate(capturesOnly bool) []Move {
	pseudo := make([]Move, 0, 48)
	pseudo = p.generatePseudo(pseudo, capturesOnly)

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if _, ok := p.MakeMove(m); ok {
			legal = append(legal, m)
		}
	}
	return legal
}

func (p *Position) generatePseudo(dst []Move, capturesOnly bool) []Move {
	us := p.side
	them := us.Opponent()
	own := p.occupied[us]
	enemy := p.occupied[them]

	dst = p.generatePawnMoves(dst, capturesOnly)

	knights := p.pieces[us][Knight]
	for knights != 0 {
		from := knights.pop()
		targets := knightAttacks[from] &^ own
		if capturesOnly {
			targets &= enemy
		}
		dst = emitTargets(dst, from, targets, Knight, p, capturesOnly)
	}

	kings := p.pieces[us][King]
	for kings != 0 {
		from := kings.pop()
		targets := kingAttacks[from] &^ own
		if capturesOnly {
			targets &= enemy
		}
		dst = emitTargets(dst, from, targets, King, p, capturesOnly)
	}

	bishops := p.pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.pop()
		targets := bishopAttacks(from, p.all) &^ own
		if capturesOnly {
			targets &= enemy
		}
		dst = emitTargets(dst, from, targets, Bishop, p, capturesOnly)
	}

	rooks := p.pieces[us][Rook]
	for rooks != 0 {
		from := rooks.pop()
		targets := rookAttacks(from, p.all) &^ own
		if capturesOnly {
			targets &= enemy
		}
		dst = emitTargets(dst, from, targets, Rook, p, capturesOnly)
	}

	queens := p.pieces[us][Queen]
	for queens != 0 {
		from := queens.pop()
		targets := queenAttacks(from, p.all) &^ own
		if capturesOnly {
			targets &= enemy
		}
		dst = emitTargets(dst, from, targets, Queen, p, capturesOnly)
	}

	if !capturesOnly {
		dst = p.generateCastles(dst)
	}

	return dst
}

func emitTargets(dst []Move, from Square, targets Bitboard, kind PieceKind, p *Position, capturesOnly bool) []Move {
	for targets != 0 {
		to := targets.pop()
		captured, _, has := p.PieceAt(to)
		if !has {
			captured = NoKind
		}
		dst = append(dst, NewMove(from, to, kind, captured, NoKind, FlagNone))
	}
	return dst
}

// generatePawnMoves covers single/double push, diagonal captures,
// en-passant, and queen-only promotion (promotion to knight/bishop/rook is
// an intentionally unsupported simplification).
func (p *Position) generatePawnMoves(dst []Move, capturesOnly bool) []Move {
	us := p.side
	them := us.Opponent()
	empty := ^p.all
	enemy := p.occupied[them]

	pawns := p.pieces[us][Pawn]
	var forward int
	var startRank, promoRank int
	if us == White {
		forward = 8
		startRank = 1
		promoRank = 7
	} else {
		forward = -8
		startRank = 6
		promoRank = 0
	}

	for bb := pawns; bb != 0; {
		from := bb.pop()
		rank := from.Rank()

		if !capturesOnly {
			oneSq := Square(int(from) + forward)
			if oneSq >= 0 && oneSq < 64 && bbOf(oneSq)&empty != 0 {
				dst = appendPawnMove(dst, from, oneSq, promoRank)
				if rank == startRank {
					twoSq := Square(int(from) + 2*forward)
					if bbOf(twoSq)&empty != 0 {
						dst = append(dst, NewMove(from, twoSq, Pawn, NoKind, NoKind, FlagNone))
					}
				}
			}
		}

		for _, capSq := range pawnCaptureSquares(from, us) {
			if capSq < 0 || capSq >= 64 {
				continue
			}
			if bbOf(capSq)&enemy != 0 {
				captured, _, _ := p.PieceAt(capSq)
				if capSq.Rank() == promoRank {
					dst = append(dst, NewMove(from, capSq, Pawn, captured, Queen, FlagNone))
				} else {
					dst = append(dst, NewMove(from, capSq, Pawn, captured, NoKind, FlagNone))
				}
			} else if capSq == p.ep && p.ep != NoSquare {
				dst = append(dst, NewMove(from, capSq, Pawn, Pawn, NoKind, FlagEnPassant))
			}
		}
	}
	return dst
}

func appendPawnMove(dst []Move, from, to Square, promoRank int) []Move {
	if to.Rank() == promoRank {
		return append(dst, NewMove(from, to, Pawn, NoKind, Queen, FlagNone))
	}
	return append(dst, NewMove(from, to, Pawn, NoKind, NoKind, FlagNone))
}

// pawnCaptureSquares returns the (up to two) diagonally-forward squares for
// a pawn of side on from, respecting board edges (no file wrap-around).
func pawnCaptureSquares(from Square, side Side) [2]Square {
	file := from.File()
	var result [2]Square
	var forward int
	if side == White {
		forward = 8
	} else {
		forward = -8
	}
	result[0], result[1] = NoSquare, NoSquare
	if file > 0 {
		result[0] = Square(int(from) + forward - 1)
	}
	if file < 7 {
		result[1] = Square(int(from) + forward + 1)
	}
	return result
}

// generateCastles adds the (up to two) castling moves for us, each encoded
// as a king move with |from-to|=2: the right must still be held, the
// squares between king and rook must be empty, the king must not be in
// check, and the squares it crosses (including the landing square) must
// not be attacked.
func (p *Position) generateCastles(dst []Move) []Move {
	us := p.side
	them := us.Opponent()
	if p.InCheck(us) {
		return dst
	}
	if us == White {
		if p.castle&WhiteOO != 0 && p.all&(bbOf(5)|bbOf(6)) == 0 &&
			!p.IsAttacked(5, them) && !p.IsAttacked(6, them) {
			dst = append(dst, NewMove(4, 6, King, NoKind, NoKind, FlagCastle))
		}
		if p.castle&WhiteOOO != 0 && p.all&(bbOf(1)|bbOf(2)|bbOf(3)) == 0 &&
			!p.IsAttacked(3, them) && !p.IsAttacked(2, them) {
			dst = append(dst, NewMove(4, 2, King, NoKind, NoKind, FlagCastle))
		}
	} else {
		if p.castle&BlackOO != 0 && p.all&(bbOf(61)|bbOf(62)) == 0 &&
			!p.IsAttacked(61, them) && !p.IsAttacked(62, them) {
			dst = append(dst, NewMove(60, 62, King, NoKind, NoKind, FlagCastle))
		}
		if p.castle&BlackOOO != 0 && p.all&(bbOf(57)|bbOf(58)|bbOf(59)) == 0 &&
			!p.IsAttacked(59, them) && !p.IsAttacked(58, them) {
			dst = append(dst, NewMove(60, 58, King, NoKind, NoKind, FlagCastle))
		}
	}
	return dst
}
