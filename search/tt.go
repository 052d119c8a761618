package search

import "github.com/tallow/goosegambit/board"

// Flag records why a stored score is a bound rather than an exact value.
type Flag uint8

const (
	Exact Flag = iota
	Alpha
	Beta
)

// Entry is one transposition-table slot: hash, depth, score, flag, and the
// best move found at that node. board.Move is itself a packed 32-bit word,
// so storing it directly already is the packed move a TT entry wants —
// there is no separate unpacking step needed the way a
// from|to<<6|piece<<12-only encoding would require.
type Entry struct {
	Hash     uint64
	Depth    int
	Score    int32
	Flag     Flag
	BestMove board.Move
	used     bool
}

// TransTable is a fixed-size, always-replace hash table keyed by Zobrist
// hash modulo table size. Size is a power of two so the modulo can be a
// mask; one entry per slot, no clustering.
type TransTable struct {
	entries []Entry
	mask    uint64
}

// DefaultEntries is 2^20, the default table size used before any
// "setoption Hash" value arrives.
const DefaultEntries = 1 << 20

func (t *TransTable) Resize(mb int) {
	bytesPerEntry := 40 // approximate entry footprint; used only to size from MB
	count := (mb * 1024 * 1024) / bytesPerEntry
	size := 1
	for size*2 <= count && size < (1<<26) {
		size <<= 1
	}
	if size == 0 {
		size = DefaultEntries
	}
	t.entries = make([]Entry, size)
	t.mask = uint64(size - 1)
}

func (t *TransTable) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

func (t *TransTable) index(hash uint64) uint64 {
	if len(t.entries) == 0 {
		return 0
	}
	return hash & t.mask
}

// Probe returns the entry at hash's slot and whether it actually matches.
// Hash equality is the only collision guard; a false positive is tolerated
// as a slightly weaker move, never a crash.
func (t *TransTable) Probe(hash uint64) (Entry, bool) {
	if len(t.entries) == 0 {
		return Entry{}, false
	}
	e := t.entries[t.index(hash)]
	return e, e.used && e.Hash == hash
}

// Store always replaces whatever was in the slot.
func (t *TransTable) Store(hash uint64, depth int, score int32, flag Flag, best board.Move) {
	if len(t.entries) == 0 {
		return
	}
	t.entries[t.index(hash)] = Entry{
		Hash:     hash,
		Depth:    depth,
		Score:    score,
		Flag:     flag,
		BestMove: best,
		used:     true,
	}
}

// MatchesMove reports whether a legal move's identity equals the stored
// best move, used to pick the TT move out of the legal list for ordering.
func (e Entry) MatchesMove(m board.Move) bool { return e.used && e.BestMove.Equals(m) }
