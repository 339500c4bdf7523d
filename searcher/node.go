package searcher

import (
	"math"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"

	"canopy/game"
)

// node is one state of the search tree. The parent link is a plain
// back-reference used for UCT and backpropagation, never for ownership; the
// tree is rooted at the current turn's snapshot and discarded whole once a
// move is chosen.
//
// rewards accumulates outcomes from the perspective of the player who chose
// this node's incoming action (the parent's mover), so UCT maximization is
// correct at both my plies and the opponent's.
type node struct {
	parent   *node
	action   game.Move // move that produced this node from its parent
	player   string    // side to move at this node
	untried  []game.Move
	children []*node
	visits   int
	rewards  float64
}

func newNode(parent *node, action game.Move, state game.State) *node {
	return &node{
		parent:  parent,
		action:  action,
		player:  state.Player(),
		untried: state.LegalMoves(),
	}
}

// selectOrExpand advances one level of the descent in a single pass. A node
// with untried actions expands one of them (chosen uniformly at random) and
// reports added=true so the descent stops there; a fully expanded node
// selects its max-UCT child; a terminal node returns itself.
func (n *node) selectOrExpand(state game.State, rng *rand.Rand, c float64) (child *node, childState game.State, added bool) {
	if len(n.untried) > 0 {
		child, childState := n.expand(state, rng)
		return child, childState, true
	}

	if len(n.children) == 0 { // Terminal node
		return n, state, false
	}

	best := n.pickChild(c)
	return best, state.Play(best.action), false
}

func (n *node) expand(state game.State, rng *rand.Rand) (*node, game.State) {
	i := rng.Intn(len(n.untried))
	action := n.untried[i]
	n.untried[i] = n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	childState := state.Play(action)
	child := newNode(n, action, childState)
	n.children = append(n.children, child)
	return child, childState
}

// pickChild scans the children once and returns the UCT maximizer. An
// unvisited child has infinite priority and wins immediately.
func (n *node) pickChild(c float64) *node {
	if n.visits == 0 {
		panic("node has children but no visits")
	}
	logParent := math.Log(float64(n.visits))

	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		if child.visits == 0 {
			return child
		}
		score := child.rewards/float64(child.visits) +
			c*math.Sqrt(logParent/float64(child.visits))
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// backup walks the parent chain with an explicit loop, crediting each
// ancestor with the rollout value. value is from my perspective; it is
// negated for nodes whose incoming action was the opponent's choice.
func (n *node) backup(value float64) {
	for walk := n; walk != nil; walk = walk.parent {
		walk.visits++
		if walk.parent == nil {
			continue
		}
		if walk.parent.player == game.Me {
			walk.rewards += value
		} else {
			walk.rewards -= value
		}
	}
}

// mostVisited returns the child with the highest visit count: the search's
// own confidence, which is far less noisy than raw mean outcome for
// low-visit children. Returns nil for a childless root.
func (n *node) mostVisited() *node {
	if len(n.children) == 0 {
		return nil
	}
	return lo.MaxBy(n.children, func(a, b *node) bool {
		return a.visits > b.visits
	})
}

// size counts the nodes of the subtree rooted here.
func (n *node) size() int {
	total := 1
	for _, child := range n.children {
		total += child.size()
	}
	return total
}
