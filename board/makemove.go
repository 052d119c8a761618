package board

// MakeMove applies m to a copy of p and returns the resulting position plus
// whether the move was legal (the mover's king is not left in check). On an
// illegal move, the returned position is meaningless and must be discarded;
// the caller never mutates its own copy of p.
func (p Position) MakeMove(m Move) (Position, bool) {
	np := p
	np.applyMove(m)
	moverSide := p.side
	np.side = moverSide.Opponent()
	np.hash ^= zobristSideKey

	kingSq := np.KingSquare(moverSide)
	if kingSq == NoSquare || np.IsAttacked(kingSq, moverSide.Opponent()) {
		return Position{}, false
	}
	return np, true
}

// MakeNullMove flips the side to move without moving any piece, for
// null-move pruning: toggle side, clear ep, XOR the side and ep keys.
func (p Position) MakeNullMove() Position {
	np := p
	if np.ep != NoSquare {
		np.hash ^= zobristEP[np.ep.File()]
		np.ep = NoSquare
	}
	np.side = p.side.Opponent()
	np.hash ^= zobristSideKey
	return np
}

// applyMove mutates p in place: hashes out the moving piece/old en-passant
// square/old castle rights, updates castle rights, moves the piece,
// resolves captures (including en passant), handles double pushes and
// promotion, moves the rook on castling, and rebuilds occupancy. It leaves
// p.side as the mover's original side; the caller flips it afterwards so
// the legality check can still query "am I, the mover, in check".
func (p *Position) applyMove(m Move) {
	us := p.side
	them := us.Opponent()
	from, to := m.From(), m.To()
	piece := m.Piece()
	promo := m.Promo()
	flag := m.Flag()

	fromBB := bbOf(from)
	toBB := bbOf(to)

	// 1-2: hash out moving piece at from, old ep, old castle rights.
	p.hash ^= pieceKey(us, piece, from)
	if p.ep != NoSquare {
		p.hash ^= zobristEP[p.ep.File()]
	}
	p.hash ^= zobristCastle[p.castle]

	// 3: castle-rights bookkeeping, computed before the board mutates.
	newRights := p.castle
	if piece == King {
		if us == White {
			newRights &^= WhiteOO | WhiteOOO
		} else {
			newRights &^= BlackOO | BlackOOO
		}
	}
	if piece == Rook {
		switch from {
		case 0:
			newRights &^= WhiteOOO
		case 7:
			newRights &^= WhiteOO
		case 56:
			newRights &^= BlackOOO
		case 63:
			newRights &^= BlackOO
		}
	}
	switch to {
	case 0:
		newRights &^= WhiteOOO
	case 7:
		newRights &^= WhiteOO
	case 56:
		newRights &^= BlackOOO
	case 63:
		newRights &^= BlackOO
	}

	// 4: XOR in new rights, reset ep.
	p.castle = newRights
	p.hash ^= zobristCastle[p.castle]
	p.ep = NoSquare

	// 5: move the piece.
	p.pieces[us][piece] ^= fromBB | toBB
	p.hash ^= pieceKey(us, piece, to)

	// 6: ordinary capture — remove whatever of the opponent's sits on `to`.
	if flag != FlagEnPassant {
		for kind := Pawn; kind <= King; kind++ {
			if p.pieces[them][kind]&toBB != 0 {
				p.pieces[them][kind] &^= toBB
				p.hash ^= pieceKey(them, kind, to)
				break
			}
		}
	}

	// 7: pawn-specific: en passant capture, double push, promotion.
	if piece == Pawn {
		if flag == FlagEnPassant {
			var capSq Square
			if us == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			p.pieces[them][Pawn] &^= bbOf(capSq)
			p.hash ^= pieceKey(them, Pawn, capSq)
		}
		diff := int(to) - int(from)
		if diff == 16 || diff == -16 {
			var passed Square
			if us == White {
				passed = from + 8
			} else {
				passed = from - 8
			}
			p.ep = passed
			p.hash ^= zobristEP[passed.File()]
		}
		if promo != NoKind {
			p.pieces[us][Pawn] &^= toBB
			p.pieces[us][promo] |= toBB
			p.hash ^= pieceKey(us, Pawn, to)
			p.hash ^= pieceKey(us, promo, to)
		}
	}

	// 8: king-specific castling — move the matching rook.
	if piece == King && flag == FlagCastle {
		var rookFrom, rookTo Square
		switch to {
		case 6:
			rookFrom, rookTo = 7, 5
		case 2:
			rookFrom, rookTo = 0, 3
		case 62:
			rookFrom, rookTo = 63, 61
		case 58:
			rookFrom, rookTo = 56, 59
		}
		p.pieces[us][Rook] ^= bbOf(rookFrom) | bbOf(rookTo)
		p.hash ^= pieceKey(us, Rook, rookFrom)
		p.hash ^= pieceKey(us, Rook, rookTo)
	}

	// 9: rebuild occupancy; halfmove/fullmove bookkeeping (never consulted
	// by search).
	p.recomputeOccupancy()
	if piece == Pawn || m.IsCapture() {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	if us == Black {
		p.fullmove++
	}
}
