package game

import "fmt"

// GameState is one snapshot of the match. The simultaneous game is
// serialized into alternating plies: "me" resolves an action, then the
// opponent does, and the day settles once both sides have resolved.
//
// GameState is copy-on-write: Play never mutates its receiver.
type GameState struct {
	Board *Board // shared, read-only
	Rules Rules

	Day        int
	Nutrients  int
	MySun      int
	MyScore    int
	OppSun     int
	OppScore   int
	OppWaiting bool

	Trees   []Tree
	Actions []Action // legal actions for "me" at this snapshot

	turn      string // side whose action resolves next
	myWaiting bool
}

// TurnFacts are the per-turn inputs supplied by the host process.
type TurnFacts struct {
	Day        int
	Nutrients  int
	MySun      int
	MyScore    int
	OppSun     int
	OppScore   int
	OppWaiting bool
	Trees      []Tree
	Actions    []Action
}

// NewSnapshot builds the state snapshot for one live turn. The acting side
// is "me"; shadow flags are derived from the day, not read from the facts.
func NewSnapshot(board *Board, rules Rules, facts TurnFacts) *GameState {
	gs := &GameState{
		Board:      board,
		Rules:      rules,
		Day:        facts.Day,
		Nutrients:  facts.Nutrients,
		MySun:      facts.MySun,
		MyScore:    facts.MyScore,
		OppSun:     facts.OppSun,
		OppScore:   facts.OppScore,
		OppWaiting: facts.OppWaiting,
		Trees:      append([]Tree(nil), facts.Trees...),
		Actions:    append([]Action(nil), facts.Actions...),
		turn:       Me,
	}
	gs.refreshShadows()
	return gs
}

// NewMatchState sets up a fresh offline match: full nutrient pool and a
// size-1 tree for each side on each of the given cells.
func NewMatchState(board *Board, rules Rules, myCells, oppCells []int) *GameState {
	gs := &GameState{
		Board:     board,
		Rules:     rules,
		Nutrients: 20,
		turn:      Me,
	}
	for _, cell := range myCells {
		gs.Trees = append(gs.Trees, Tree{CellIndex: cell, Size: 1, IsMine: true})
	}
	for _, cell := range oppCells {
		gs.Trees = append(gs.Trees, Tree{CellIndex: cell, Size: 1, IsMine: false})
	}
	gs.refreshShadows()
	gs.Actions = legalActions(gs, true)
	return gs
}

// Copy returns a deep copy. The board and rules are shared; the forest and
// action list are owned by the copy.
func (gs *GameState) Copy() *GameState {
	next := *gs
	next.Trees = append([]Tree(nil), gs.Trees...)
	next.Actions = append([]Action(nil), gs.Actions...)
	return &next
}

// Player returns the side whose action resolves next.
func (gs *GameState) Player() string {
	return gs.turn
}

// LegalMoves returns the action set of the side to move, or nil once the
// match is over. For "me" this is the host-supplied (or regenerated)
// candidate list; for the opponent it is generated symmetrically, collapsing
// to a lone Wait while the opponent is asleep for the day.
func (gs *GameState) LegalMoves() []Move {
	if gs.Day >= gs.Rules.FinalDay {
		return nil
	}

	var actions []Action
	if gs.turn == Opponent {
		if gs.OppWaiting {
			actions = []Action{Wait()}
		} else {
			actions = legalActions(gs, false)
		}
	} else {
		actions = gs.Actions
	}

	moves := make([]Move, len(actions))
	for i, action := range actions {
		moves[i] = action
	}
	return moves
}

// Play resolves the side-to-move's action and returns the successor state.
// After my ply the turn passes to the opponent; after the opponent's ply the
// day settles: income is credited for every unshadowed tree, the day
// advances, dormancy and the waiting flags clear, and shadows and my legal
// actions are recomputed for the new sun direction.
func (gs *GameState) Play(move Move) State {
	action, ok := move.(Action)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}

	next := gs.Copy()
	mine := gs.turn != Opponent
	next.resolve(action, mine)

	if mine {
		next.turn = Opponent
		next.myWaiting = action.Type == WaitAction
	} else {
		next.settleDay()
	}
	return next
}

// resolve applies one action's tree mutations and accounting to the mover.
// Defined only over legal actions; a missing source or target tree is a
// contract violation and panics.
func (gs *GameState) resolve(action Action, mine bool) {
	switch action.Type {
	case WaitAction:
		// No tree mutation; income settles when the day does.

	case GrowAction:
		tree := gs.treeAt(action.Target)
		if tree == nil || tree.Size >= MaxTreeSize {
			panic(fmt.Sprintf("grow: no growable tree at cell %d", action.Target))
		}
		tree.Size++
		tree.IsDormant = true
		gs.spend(mine, gs.Rules.GrowCost[tree.Size])

	case SeedAction:
		source := gs.treeAt(action.Source)
		if source == nil {
			panic(fmt.Sprintf("seed: no source tree at cell %d", action.Source))
		}
		cost := gs.Rules.SeedCost(gs.countSeeds(mine))
		source.IsDormant = true
		gs.Trees = append(gs.Trees, Tree{
			CellIndex: action.Target,
			IsMine:    mine,
			IsDormant: true,
		})
		gs.spend(mine, cost)

	case CompleteAction:
		tree := gs.treeAt(action.Target)
		if tree == nil || tree.Size != MaxTreeSize {
			panic(fmt.Sprintf("complete: no mature tree at cell %d", action.Target))
		}
		gs.removeTree(action.Target)
		points := gs.Nutrients + gs.Rules.RichnessBonus[gs.Board.Richness(action.Target)]
		if mine {
			gs.MyScore += points
		} else {
			gs.OppScore += points
		}
		if gs.Nutrients > 0 {
			gs.Nutrients--
		}
		gs.spend(mine, gs.Rules.CompleteCost)

	default:
		panic(fmt.Sprintf("unknown action type %d", action.Type))
	}
}

func (gs *GameState) settleDay() {
	for _, tree := range gs.Trees {
		if tree.IsShadowed {
			continue
		}
		if tree.IsMine {
			gs.MySun += tree.Size
		} else {
			gs.OppSun += tree.Size
		}
	}

	gs.Day++
	gs.turn = Me
	gs.myWaiting = false
	gs.OppWaiting = false
	for i := range gs.Trees {
		gs.Trees[i].IsDormant = false
	}
	gs.refreshShadows()

	if gs.Day < gs.Rules.FinalDay {
		gs.Actions = legalActions(gs, true)
	} else {
		gs.Actions = nil
	}
}

func (gs *GameState) refreshShadows() {
	for i := range gs.Trees {
		gs.Trees[i].IsShadowed = Shadowed(
			gs.Board, gs.Trees, gs.Day, gs.Trees[i].Size, gs.Trees[i].CellIndex)
	}
}

func (gs *GameState) treeAt(cell int) *Tree {
	for i := range gs.Trees {
		if gs.Trees[i].CellIndex == cell {
			return &gs.Trees[i]
		}
	}
	return nil
}

func (gs *GameState) removeTree(cell int) {
	for i := range gs.Trees {
		if gs.Trees[i].CellIndex == cell {
			gs.Trees = append(gs.Trees[:i], gs.Trees[i+1:]...)
			return
		}
	}
}

func (gs *GameState) spend(mine bool, cost int) {
	if mine {
		gs.MySun -= cost
	} else {
		gs.OppSun -= cost
	}
}

// Winner returns "" while the match is running. At the final day it compares
// score plus a one-third credit per unconverted sun; ties break on standing
// tree count, then raw score.
func (gs *GameState) Winner() string {
	if gs.Day < gs.Rules.FinalDay {
		return ""
	}

	my := float64(gs.MyScore) + float64(gs.MySun)/3.0
	opp := float64(gs.OppScore) + float64(gs.OppSun)/3.0
	switch {
	case my > opp:
		return Me
	case my < opp:
		return Opponent
	}

	myTrees, oppTrees := gs.treeCounts()
	switch {
	case myTrees > oppTrees:
		return Me
	case myTrees < oppTrees:
		return Opponent
	}

	switch {
	case gs.MyScore > gs.OppScore:
		return Me
	case gs.MyScore < gs.OppScore:
		return Opponent
	}
	return Draw
}

// Mirror returns the same position seen from the opponent's side, so one
// canonical state can drive both agents of an offline match.
func (gs *GameState) Mirror() *GameState {
	next := gs.Copy()
	next.MySun, next.OppSun = gs.OppSun, gs.MySun
	next.MyScore, next.OppScore = gs.OppScore, gs.MyScore
	next.OppWaiting, next.myWaiting = gs.myWaiting, gs.OppWaiting
	for i := range next.Trees {
		next.Trees[i].IsMine = !next.Trees[i].IsMine
	}
	if gs.turn == Opponent {
		next.turn = Me
	} else {
		next.turn = Opponent
	}
	if next.turn == Me && next.Day < next.Rules.FinalDay {
		next.Actions = legalActions(next, true)
	} else {
		next.Actions = nil
	}
	return next
}
