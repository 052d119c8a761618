package search

import "github.com/tallow/goosegambit/board"

// search is iterative deepening's inner alpha-beta PVS node: null-move
// pruning, late-move reductions, futility pruning, check extensions, and
// transposition-table probing/storing.
func (e *Engine) search(pos *board.Position, depth, ply int, alpha, beta int32, nullOk bool) (int32, board.Move) {
	e.Nodes++

	inCheck := pos.InCheck(pos.Side())
	if inCheck {
		depth++
	}

	hash := pos.Hash()
	ttEntry, hasTT := e.TT.Probe(hash)
	if hasTT && ttEntry.Depth >= depth {
		switch ttEntry.Flag {
		case Exact:
			return ttEntry.Score, ttEntry.BestMove
		case Alpha:
			if ttEntry.Score <= alpha {
				return alpha, ttEntry.BestMove
			}
		case Beta:
			if ttEntry.Score >= beta {
				return beta, ttEntry.BestMove
			}
		}
	}

	if depth <= 0 {
		return e.quiescence(pos, alpha, beta, 0), board.NullMove
	}

	if nullOk && !inCheck && depth >= 3 && ply > 0 {
		nullPos := pos.MakeNullMove()
		r := 2
		if depth > 6 {
			r = 3
		}
		score, _ := e.search(&nullPos, depth-1-r, ply+1, -beta, -beta+1, false)
		score = -score
		if score >= beta {
			return beta, board.NullMove
		}
	}

	moves := pos.Generate(false)
	if len(moves) == 0 {
		if inCheck {
			return -MateScore + int32(ply), board.NullMove
		}
		return DrawScore, board.NullMove
	}

	scored := e.orderMoves(pos, moves, ply, ttEntry, hasTT)

	origAlpha := alpha
	var bestMove board.Move
	bestScore := -Inf
	if ply == 0 {
		bestMove = scored[0].move
	}

	for moveCount, sm := range scored {
		m := sm.move
		quiet := isQuiet(m)

		reduction := 0
		if moveCount+1 > 4 && depth >= 3 && !inCheck && quiet && m.Promo() == board.NoKind {
			switch {
			case moveCount+1 > 12:
				reduction = 3
			case moveCount+1 > 6:
				reduction = 2
			default:
				reduction = 1
			}
			if e.Killers.IsKiller(ply, m) || e.History.Score(pos.Side(), m.From(), m.To()) > 5000 {
				reduction--
				if reduction < 0 {
					reduction = 0
				}
			}
		}

		child, ok := pos.MakeMove(m)
		if !ok {
			continue
		}

		var score int32
		if moveCount == 0 {
			score, _ = e.search(&child, depth-1-reduction, ply+1, -beta, -alpha, true)
			score = -score
		} else {
			score, _ = e.search(&child, depth-1-reduction, ply+1, -alpha-1, -alpha, true)
			score = -score
			if score > alpha && score < beta {
				score, _ = e.search(&child, depth-1, ply+1, -beta, -alpha, true)
				score = -score
			} else if reduction > 0 && score > alpha {
				score, _ = e.search(&child, depth-1, ply+1, -beta, -alpha, true)
				score = -score
			}
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			if quiet {
				e.History.Add(pos.Side(), m.From(), m.To(), depth)
			}
		}
		if alpha >= beta {
			if quiet {
				e.Killers.Insert(ply, m)
			}
			break
		}

		if depth <= 2 && !inCheck && moveCount+1 > 8 && quiet {
			if Evaluate(pos)+100*int32(depth) < alpha {
				break
			}
		}
	}

	var flag Flag
	switch {
	case bestScore <= origAlpha:
		flag = Alpha
	case bestScore >= beta:
		flag = Beta
	default:
		flag = Exact
	}
	e.TT.Store(hash, depth, bestScore, flag, bestMove)

	return bestScore, bestMove
}
