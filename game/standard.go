package game

// Axial coordinate vectors for the six hex directions, index-aligned with
// the neighbor arrays: 0=E, 1=NE, 2=NW, 3=W, 4=SW, 5=SE.
var axialDirections = [NumDirections][2]int{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// StandardBoard builds the 37-cell board of the standard match: a hex
// spiral of radius 3 around a center cell, with richness falling from 3 at
// the middle to 1 on the outer ring. The live host transmits its own board
// (including randomized unusable cells); this one serves offline matches
// and tests.
func StandardBoard() *Board {
	type axial struct{ q, r int }

	coords := []axial{{0, 0}}
	for ring := 1; ring <= 3; ring++ {
		q, r := ring, 0
		// Walk the ring counterclockwise: E corner first, then one side
		// per direction starting at NW.
		for _, dir := range []int{2, 3, 4, 5, 0, 1} {
			for step := 0; step < ring; step++ {
				coords = append(coords, axial{q, r})
				q += axialDirections[dir][0]
				r += axialDirections[dir][1]
			}
		}
	}

	indexOf := make(map[axial]int, len(coords))
	for i, c := range coords {
		indexOf[c] = i
	}

	cells := make([]Cell, len(coords))
	for i, c := range coords {
		distance := hexDistance(c.q, c.r)
		richness := 3
		if distance >= 2 {
			richness = 4 - distance
		}

		cell := Cell{Index: i, Richness: richness}
		for dir, v := range axialDirections {
			neighbor, ok := indexOf[axial{c.q + v[0], c.r + v[1]}]
			if !ok {
				neighbor = NoCell
			}
			cell.Neighbors[dir] = neighbor
		}
		cells[i] = cell
	}
	return NewBoard(cells)
}

func hexDistance(q, r int) int {
	s := -q - r
	return (abs(q) + abs(r) + abs(s)) / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
