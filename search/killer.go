package search

import "github.com/tallow/goosegambit/board"

// KillerTable holds two killer-move slots per ply. A new killer
// shifts the old primary into the secondary slot unless the new move is
// already the primary.
type KillerTable [MaxPly][2]board.Move

func (k *KillerTable) Insert(ply int, m board.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if k[ply][0].Equals(m) {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = m
}

func (k *KillerTable) IsKiller(ply int, m board.Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	return k[ply][0].Equals(m) || k[ply][1].Equals(m)
}
