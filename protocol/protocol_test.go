package protocol

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"canopy/game"
)

const boardBlock = `2
0 3 1 -1 -1 -1 -1 -1
1 1 -1 -1 -1 0 -1 -1
`

const turnBlock = `5
18
7 12
3 9 1
2
0 2 1 0
1 1 0 1
3
WAIT
GROW 0
SEED 0 1
`

func TestReadBoard(t *testing.T) {
	reader := NewReader(strings.NewReader(boardBlock))

	board, err := reader.ReadBoard()
	require.NoError(t, err)
	require.Len(t, board.Cells, 2)
	require.Equal(t, 3, board.Richness(0))
	require.Equal(t, 1, board.Richness(1))
	require.Equal(t, 1, board.Neighbor(0, 0))
	require.Equal(t, 0, board.Neighbor(1, 3))
	require.Equal(t, game.NoCell, board.Neighbor(0, 1))
}

func TestReadTurn(t *testing.T) {
	reader := NewReader(strings.NewReader(boardBlock + turnBlock))
	board, err := reader.ReadBoard()
	require.NoError(t, err)

	state, err := reader.ReadTurn(board, game.StandardRules())
	require.NoError(t, err)

	require.Equal(t, 5, state.Day)
	require.Equal(t, 18, state.Nutrients)
	require.Equal(t, 7, state.MySun)
	require.Equal(t, 12, state.MyScore)
	require.Equal(t, 3, state.OppSun)
	require.Equal(t, 9, state.OppScore)
	require.True(t, state.OppWaiting)
	require.Equal(t, game.Me, state.Player())

	require.Len(t, state.Trees, 2)
	require.Equal(t, game.Tree{CellIndex: 0, Size: 2, IsMine: true}, state.Trees[0])
	require.Equal(t, game.Tree{CellIndex: 1, Size: 1, IsDormant: true}, state.Trees[1])

	require.Equal(t, []game.Action{
		game.Wait(),
		game.Grow(0),
		game.Seed(0, 1),
	}, state.Actions)
}

func TestReadTurnRepeats(t *testing.T) {
	// The host sends one turn block per move request over the same stream.
	reader := NewReader(strings.NewReader(boardBlock + turnBlock + turnBlock))
	board, err := reader.ReadBoard()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		state, err := reader.ReadTurn(board, game.StandardRules())
		require.NoError(t, err)
		require.Equal(t, 5, state.Day)
	}

	_, err = reader.ReadTurn(board, game.StandardRules())
	require.ErrorIs(t, err, io.EOF)
}

func TestReadBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty stream", ""},
		{"non-integer header", "many\n"},
		{"truncated cell list", "2\n0 3 1 -1 -1 -1 -1 -1\n"},
		{"missing neighbor field", "1\n0 3 1 -1 -1 -1 -1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reader := NewReader(strings.NewReader(tc.input))
			_, err := reader.ReadBoard()
			require.Error(t, err)
		})
	}
}

func TestReadTurnErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated after day", "5\n"},
		{"bad resource line", "5\n18\n7\n"},
		{"bad tree line", "5\n18\n7 12\n3 9 1\n1\n0 2 1\n"},
		{"bad action line", "5\n18\n7 12\n3 9 1\n0\n1\nPRUNE 0\n"},
	}

	boardReader := NewReader(strings.NewReader(boardBlock))
	board, err := boardReader.ReadBoard()
	require.NoError(t, err)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reader := NewReader(strings.NewReader(tc.input))
			_, err := reader.ReadTurn(board, game.StandardRules())
			require.Error(t, err)
		})
	}
}

func TestWriteAction(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAction(&buf, game.Grow(3)))
	require.Equal(t, "GROW 3\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteAction(&buf, game.Seed(0, 4)))
	require.Equal(t, "SEED 0 4\n", buf.String())
}
