package search

import (
	"fmt"
	"time"

	"github.com/tallow/goosegambit/board"
)

// InfoLine is one "info depth ..." line emitted per completed iterative
// deepening depth.
type InfoLine struct {
	Depth   int
	ScoreCP int32
	MateIn  int // 0 means "not a mate score"
	Nodes   uint64
	NPS     uint64
	PV      board.Move
}

func (i InfoLine) String() string {
	var scorePart string
	if i.MateIn != 0 {
		scorePart = fmt.Sprintf("mate %d", i.MateIn)
	} else {
		scorePart = fmt.Sprintf("cp %d", i.ScoreCP)
	}
	return fmt.Sprintf("info depth %d score %s nodes %d nps %d pv %s",
		i.Depth, scorePart, i.Nodes, i.NPS, i.PV.String())
}

const aspirationWindow = int32(50)
const narrowedWindow = int32(25)

// Search runs iterative deepening with aspiration windows and time
// control. info, if non-nil, is called once per completed depth.
// The returned move is board.NullMove ("0000") if pos has no legal moves.
func (e *Engine) Search(pos board.Position, limits Limits, info func(InfoLine)) board.Move {
	e.Nodes, e.QNodes = 0, 0
	e.start = time.Now()
	e.stop = false

	if len(pos.Generate(false)) == 0 {
		return board.NullMove
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 {
		if limits.Infinite {
			maxDepth = 20
		} else {
			maxDepth = e.MaxDepth
		}
	}
	if maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	tm := newTimeManager(limits, pos.Side() == board.White)
	hasTimeCap := limits.MoveTime > 0 || (!limits.Infinite && (limits.WTime > 0 || limits.BTime > 0))

	var score int32
	var best board.Move
	window := aspirationWindow

	for d := 1; d <= maxDepth; d++ {
		if e.stop {
			break
		}
		alpha, beta := -Inf, Inf
		if d >= 4 {
			alpha, beta = score-window, score+window
		}

		s, m := e.search(&pos, d, 0, alpha, beta, true)
		if s <= alpha || s >= beta {
			s, m = e.search(&pos, d, 0, -Inf, Inf, true)
			window = aspirationWindow
		} else {
			window = narrowedWindow
		}
		score, best = s, m

		if info != nil {
			info(e.buildInfoLine(d, score, best))
		}

		if score >= MateScore-1000 || score <= -(MateScore-1000) {
			break
		}

		if hasTimeCap && d > 4 {
			if tm.elapsedFraction(e.start) > 0.4 {
				break
			}
		}
		if hasTimeCap && tm.exceeded() {
			break
		}
	}

	return best
}

func (e *Engine) buildInfoLine(depth int, score int32, pv board.Move) InfoLine {
	elapsed := time.Since(e.start)
	nodes := e.Nodes + e.QNodes
	var nps uint64
	if elapsed > 0 {
		nps = uint64(float64(nodes) / elapsed.Seconds())
	}
	line := InfoLine{Depth: depth, Nodes: nodes, NPS: nps, PV: pv}
	if score >= MateScore-1000 {
		pliesToMate := MateScore - score
		line.MateIn = int((pliesToMate + 1) / 2)
	} else if score <= -(MateScore - 1000) {
		pliesToMate := MateScore + score
		line.MateIn = -int((pliesToMate + 1) / 2)
	} else {
		line.ScoreCP = score
	}
	return line
}
