package game

// MaxTreeSize is the size of a mature, completable tree.
const MaxTreeSize = 3

// Tree is one standing tree. IsShadowed is derived from the day's sun
// direction and the surrounding forest, never read from the host.
type Tree struct {
	CellIndex  int
	Size       int // 0 (seed) to MaxTreeSize
	IsMine     bool
	IsDormant  bool // already acted this day
	IsShadowed bool
}
