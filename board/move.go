package board

import (
	"errors"
	"strings"
)

// MoveFlag marks the special-cased moves that need extra board surgery
// beyond moving one piece from From to To.
type MoveFlag uint8

const (
	FlagNone      MoveFlag = 0
	FlagCastle    MoveFlag = 1
	FlagEnPassant MoveFlag = 2
)

// Move packs (from, to, piece, promo) plus a cached captured kind and flag
// into a 32-bit word. Equality (see Equals) ignores captured/flag and
// compares (from, to, promo) only, so TT-move and killer-move matching
// work regardless of which fields a given construction site happened to
// fill in.
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePieceShift = 12
	moveCaptShift  = 15
	movePromoShift = 18
	moveFlagShift  = 21
)

func NewMove(from, to Square, piece PieceKind, captured PieceKind, promo PieceKind, flag MoveFlag) Move {
	return Move(uint32(from)&0x3F |
		(uint32(to)&0x3F)<<moveToShift |
		(uint32(piece)&0x7)<<movePieceShift |
		(uint32(captured)&0x7)<<moveCaptShift |
		(uint32(promo)&0x7)<<movePromoShift |
		(uint32(flag)&0x3)<<moveFlagShift)
}

func (m Move) From() Square         { return Square(m & 0x3F) }
func (m Move) To() Square           { return Square((m >> moveToShift) & 0x3F) }
func (m Move) Piece() PieceKind     { return PieceKind((m >> movePieceShift) & 0x7) }
func (m Move) Captured() PieceKind  { return PieceKind((m >> moveCaptShift) & 0x7) }
func (m Move) Promo() PieceKind     { return PieceKind((m >> movePromoShift) & 0x7) }
func (m Move) Flag() MoveFlag       { return MoveFlag((m >> moveFlagShift) & 0x3) }
func (m Move) IsPromo() bool        { return m.Promo() != NoKind }
func (m Move) IsCapture() bool      { return m.Captured() != NoKind || m.Flag() == FlagEnPassant }

// Equals compares two moves by (from, to, promo) only.
func (m Move) Equals(o Move) bool {
	return m.From() == o.From() && m.To() == o.To() && m.Promo() == o.Promo()
}

// Packed returns the TT-stored packed-move word: from | to<<6 | piece<<12.
func (m Move) Packed() uint32 {
	return uint32(m.From()) | uint32(m.To())<<6 | uint32(m.Piece())<<12
}

const NullMove Move = 0

func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if promo := m.Promo(); promo != NoKind {
		s += strings.ToLower(string(promo.Letter()))
	}
	return s
}

// ParseUCIMove parses a "<from><to>[promo]" UCI move string into its
// from/to/promo components. It does not know about the board, so it cannot
// fill in Piece/Captured/Flag; callers match the result against a legal
// move list.
func ParseUCIMove(s string) (from, to Square, promo PieceKind, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "0000" {
		return NoSquare, NoSquare, NoKind, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return 0, 0, 0, errors.New("move: bad length")
	}
	from, err = parseSquare(s[0:2])
	if err != nil {
		return 0, 0, 0, err
	}
	to, err = parseSquare(s[2:4])
	if err != nil {
		return 0, 0, 0, err
	}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return 0, 0, 0, errors.New("move: bad promotion piece")
		}
	}
	return from, to, promo, nil
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, errors.New("move: bad square")
	}
	return SquareFromFileRank(int(s[0]-'a'), int(s[1]-'1')), nil
}
