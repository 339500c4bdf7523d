package game

// NumDirections is the number of hex directions on the board.
const NumDirections = 6

// NoCell is the sentinel for an absent neighbor link or an unset action field.
const NoCell = -1

// Cell is one hex of the board. Richness 0 marks an unusable cell; tiers 1-3
// raise the score bonus of a tree completed there.
type Cell struct {
	Index     int
	Richness  int
	Neighbors [NumDirections]int // neighbor cell index per direction, NoCell if off board
}

// Board is the static topology of the match: a fixed set of cells with their
// richness tiers and directional neighbor links. Built once at startup and
// shared read-only by every state snapshot.
type Board struct {
	Cells []Cell
}

// NewBoard builds a board from its cells. Cells must be supplied in index
// order, index 0 being the center of the spiral.
func NewBoard(cells []Cell) *Board {
	for i, cell := range cells {
		if cell.Index != i {
			panic("board cells out of order")
		}
	}
	return &Board{Cells: cells}
}

// Neighbor returns the index of the cell adjacent to cell in the given
// direction, or NoCell if the board ends there.
func (b *Board) Neighbor(cell, direction int) int {
	return b.Cells[cell].Neighbors[direction]
}

// Richness returns the richness tier of a cell.
func (b *Board) Richness(cell int) int {
	return b.Cells[cell].Richness
}

// CellsWithin returns the indices of all cells reachable from origin in at
// most radius neighbor hops, excluding origin itself. Just BFS.
func (b *Board) CellsWithin(origin, radius int) []int {
	visited := make([]bool, len(b.Cells))
	visited[origin] = true
	frontier := []int{origin}

	var reached []int
	for hop := 0; hop < radius; hop++ {
		var next []int
		for _, cell := range frontier {
			for dir := 0; dir < NumDirections; dir++ {
				n := b.Neighbor(cell, dir)
				if n == NoCell || visited[n] {
					continue
				}
				visited[n] = true
				reached = append(reached, n)
				next = append(next, n)
			}
		}
		frontier = next
	}
	return reached
}
