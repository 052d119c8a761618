// Package search implements iterative-deepening alpha-beta (PVS) search
// over board.Position: move ordering, a transposition table, killer moves,
// a history heuristic, null-move pruning, late-move reductions,
// futility/delta pruning, check extensions, and quiescence search.
package search

import (
	"time"
)

// MaxPly bounds the killer table and the recursion depth the engine will
// ever reach in one search; it is generous relative to the deepest UCI
// "go depth" a front end is likely to request.
const MaxPly = 128

// Score constants, all integer centipawns — no float arithmetic anywhere
// in the search tree.
const (
	Inf       int32 = 32000
	MateScore int32 = 20000
	DrawScore int32 = 0
)

// Engine bundles the process-wide mutable search tables (transposition
// table, killers, history) so they live here rather than as hidden
// package-level singletons; the UCI shell holds one Engine and passes it
// to search by reference.
type Engine struct {
	TT      TransTable
	Killers KillerTable
	History HistoryTable

	Nodes  uint64
	QNodes uint64
	start  time.Time
	stop   bool

	// Options set via UCI setoption.
	HashMB   int
	MaxDepth int
}

// NewEngine constructs an Engine with the default hash size and depth cap
// advertised by the UCI "option" lines.
func NewEngine() *Engine {
	e := &Engine{HashMB: 64, MaxDepth: 10}
	e.TT.Resize(e.HashMB)
	return e
}

// NewGame resets the TT, killers and history to their zero state: two
// consecutive ucinewgames leave the same state as one, since zeroing
// twice is the same as zeroing once.
func (e *Engine) NewGame() {
	e.TT.Clear()
	e.Killers = KillerTable{}
	e.History = HistoryTable{}
}

// Stop sets the flag that Search checks before starting each depth. Search
// clears the flag when it starts, so a Stop made before a search has no
// effect on it, and a Stop made during an iteration is not acted on until
// that iteration completes.
func (e *Engine) Stop() { e.stop = true }
