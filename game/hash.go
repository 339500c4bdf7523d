package game

import (
	"encoding/binary"
	"hash/fnv"

	"lukechampine.com/frand"
)

// Zobrist tables for forest occupancy. The board never exceeds the standard
// 37-cell spiral, so the tables are sized once at init.
const maxCells = 37

var (
	treeTable    [maxCells][MaxTreeSize + 1][2]uint64
	dormantTable [maxCells]uint64
)

func init() {
	const bignum = 1<<62 - 2
	for cell := 0; cell < maxCells; cell++ {
		for size := 0; size <= MaxTreeSize; size++ {
			for owner := 0; owner < 2; owner++ {
				treeTable[cell][size][owner] = frand.Uint64n(bignum) + 1
			}
		}
		dormantTable[cell] = frand.Uint64n(bignum) + 1
	}
}

// Hash folds the forest's zobrist signature together with the scalar facts
// of the snapshot. Equal snapshots hash equal within one process; tables are
// re-rolled across processes.
func (gs *GameState) Hash() StateHash {
	var forest uint64
	for _, tree := range gs.Trees {
		owner := 0
		if tree.IsMine {
			owner = 1
		}
		forest ^= treeTable[tree.CellIndex][tree.Size][owner]
		if tree.IsDormant {
			forest ^= dormantTable[tree.CellIndex]
		}
	}

	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, forest)
	binary.Write(hasher, binary.LittleEndian, int64(gs.Day))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Nutrients))
	binary.Write(hasher, binary.LittleEndian, int64(gs.MySun))
	binary.Write(hasher, binary.LittleEndian, int64(gs.MyScore))
	binary.Write(hasher, binary.LittleEndian, int64(gs.OppSun))
	binary.Write(hasher, binary.LittleEndian, int64(gs.OppScore))

	var flags int64
	if gs.OppWaiting {
		flags |= 1
	}
	if gs.turn == Opponent {
		flags |= 2
	}
	binary.Write(hasher, binary.LittleEndian, flags)

	return StateHash(hasher.Sum64())
}
