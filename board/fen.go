package board

// ParseFEN is a deliberate known limitation: the FEN
// payload is accepted by the UCI command parser but not actually parsed —
// the board always resets to the standard starting position. This function
// exists so that intent is visible at the call site (cmd/uci) instead of
// just inlining Startpos() there, and so a future FEN parser has an obvious
// place to land.
func ParseFEN(fen string) Position {
	_ = fen
	return Startpos()
}
