// Package protocol implements the line-oriented boundary with the host
// process: one board block at match start, one turn block per move request,
// one action line back per turn.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"canopy/game"
)

// Reader decodes the host's protocol from a stream.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)
	return &Reader{scanner: scanner}
}

func (r *Reader) line() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("read line: %w", err)
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// ints reads one line and parses exactly n integer fields from it.
func (r *Reader) ints(n int) ([]int, error) {
	line, err := r.line()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, fmt.Errorf("line %q: want %d fields, got %d", line, n, len(fields))
	}
	values := make([]int, n)
	for i, field := range fields {
		values[i], err = strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("line %q: bad integer %q", line, field)
		}
	}
	return values, nil
}

// ReadBoard decodes the static board: a cell count, then per cell its index,
// richness tier and six neighbor indices (-1 for off board).
func (r *Reader) ReadBoard() (*game.Board, error) {
	header, err := r.ints(1)
	if err != nil {
		return nil, fmt.Errorf("board header: %w", err)
	}
	numberOfCells := header[0]

	cells := make([]game.Cell, 0, numberOfCells)
	for i := 0; i < numberOfCells; i++ {
		fields, err := r.ints(2 + game.NumDirections)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		cell := game.Cell{Index: fields[0], Richness: fields[1]}
		copy(cell.Neighbors[:], fields[2:])
		cells = append(cells, cell)
	}
	return game.NewBoard(cells), nil
}

// ReadTurn decodes one turn block into a ready-to-search state snapshot.
func (r *Reader) ReadTurn(board *game.Board, rules game.Rules) (*game.GameState, error) {
	var facts game.TurnFacts

	day, err := r.ints(1)
	if err != nil {
		return nil, fmt.Errorf("day: %w", err)
	}
	facts.Day = day[0]

	nutrients, err := r.ints(1)
	if err != nil {
		return nil, fmt.Errorf("nutrients: %w", err)
	}
	facts.Nutrients = nutrients[0]

	mine, err := r.ints(2)
	if err != nil {
		return nil, fmt.Errorf("own resources: %w", err)
	}
	facts.MySun, facts.MyScore = mine[0], mine[1]

	theirs, err := r.ints(3)
	if err != nil {
		return nil, fmt.Errorf("opponent resources: %w", err)
	}
	facts.OppSun, facts.OppScore = theirs[0], theirs[1]
	facts.OppWaiting = theirs[2] == 1

	treeHeader, err := r.ints(1)
	if err != nil {
		return nil, fmt.Errorf("tree count: %w", err)
	}
	for i := 0; i < treeHeader[0]; i++ {
		fields, err := r.ints(4)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		facts.Trees = append(facts.Trees, game.Tree{
			CellIndex: fields[0],
			Size:      fields[1],
			IsMine:    fields[2] == 1,
			IsDormant: fields[3] == 1,
		})
	}

	actionHeader, err := r.ints(1)
	if err != nil {
		return nil, fmt.Errorf("action count: %w", err)
	}
	for i := 0; i < actionHeader[0]; i++ {
		line, err := r.line()
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		action, err := game.ParseAction(line)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		facts.Actions = append(facts.Actions, action)
	}

	return game.NewSnapshot(board, rules, facts), nil
}

// WriteAction emits the chosen action in its wire form.
func WriteAction(w io.Writer, move game.Move) error {
	if _, err := fmt.Fprintln(w, move.String()); err != nil {
		return fmt.Errorf("write action: %w", err)
	}
	return nil
}
