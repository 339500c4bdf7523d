package game

// SunDirection returns the direction shadows fall toward on the given day.
// The light source rotates through the six hex directions every six days;
// the offset of 3 points the walk away from the light, toward the caster.
func SunDirection(day int) int {
	return ((day % 6) + 3) % 6
}

// Shadowed reports whether a tree of the given size at cell is blocked from
// sunlight on day. It walks up to size hops along the sun direction; a
// standing tree of equal or greater size on that path casts the shadow.
// Smaller trees never shadow, and a seed (size 0) walks no hops at all.
func Shadowed(board *Board, trees []Tree, day, size, cell int) bool {
	direction := SunDirection(day)

	at := cell
	for hop := 0; hop < size; hop++ {
		at = board.Neighbor(at, direction)
		if at == NoCell {
			return false
		}
		for i := range trees {
			if trees[i].CellIndex == at && trees[i].Size >= size {
				return true
			}
		}
	}
	return false
}
