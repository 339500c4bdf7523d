package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardBoard(t *testing.T) {
	board := StandardBoard()

	t.Run("has the full 37-cell spiral", func(t *testing.T) {
		require.Len(t, board.Cells, 37, "radius-3 hex board should have 37 cells")
	})

	t.Run("neighbor links are symmetric", func(t *testing.T) {
		for _, cell := range board.Cells {
			for dir := 0; dir < NumDirections; dir++ {
				n := board.Neighbor(cell.Index, dir)
				if n == NoCell {
					continue
				}
				back := board.Neighbor(n, (dir+3)%NumDirections)
				require.Equal(t, cell.Index, back,
					"walking direction %d from cell %d then back should return home", dir, cell.Index)
			}
		}
	})

	t.Run("richness falls with distance from center", func(t *testing.T) {
		require.Equal(t, 3, board.Richness(0), "center cell is richest")
		require.Equal(t, 3, board.Richness(1), "first ring is richest")
		require.Equal(t, 2, board.Richness(7), "second ring is tier 2")
		require.Equal(t, 1, board.Richness(19), "outer ring is tier 1")
	})
}

func TestCellsWithin(t *testing.T) {
	board := StandardBoard()

	t.Run("radius 1 reaches exactly the six neighbors of the center", func(t *testing.T) {
		got := board.CellsWithin(0, 1)
		require.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, got)
	})

	t.Run("radius 3 from the center reaches the whole board except the origin", func(t *testing.T) {
		got := board.CellsWithin(0, 3)
		require.Len(t, got, 36)
		require.NotContains(t, got, 0, "origin is excluded")
	})

	t.Run("radius 0 reaches nothing", func(t *testing.T) {
		require.Empty(t, board.CellsWithin(0, 0))
	})

	t.Run("walk stops at the board edge", func(t *testing.T) {
		// Cell 19 sits on the outer ring; its reach is clipped by the edge.
		got := board.CellsWithin(19, 1)
		require.NotEmpty(t, got)
		require.Less(t, len(got), NumDirections, "outer ring cell has off-board links")
	})
}

func TestNewBoardRejectsUnorderedCells(t *testing.T) {
	cells := []Cell{
		{Index: 1, Neighbors: noNeighbors()},
		{Index: 0, Neighbors: noNeighbors()},
	}
	require.Panics(t, func() { NewBoard(cells) }, "cells must arrive in index order")
}

func noNeighbors() [NumDirections]int {
	return [NumDirections]int{NoCell, NoCell, NoCell, NoCell, NoCell, NoCell}
}
