package game

import "github.com/samber/lo"

// EvaluateMargin scores a state from my perspective. Each side's worth is
// its score plus a one-third credit per unconverted sun. A lead above 5
// points saturates past +/-1 with a small slope so bigger routs still order;
// a narrow lead maps linearly into the +/-[0.5, 1] band; exact ties break on
// standing tree count and then on raw worth, so the search always has a
// gradient to climb.
func EvaluateMargin(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}

	my := float64(gs.MyScore) + float64(gs.MySun)/3.0
	opp := float64(gs.OppScore) + float64(gs.OppSun)/3.0

	if my > opp {
		diff := my - opp
		if diff > 5 {
			return 1.0 + (diff-5)*0.001
		}
		return 0.5 + 0.5*diff/5
	}
	if my < opp {
		diff := opp - my
		if diff > 5 {
			return -1.0 - (diff-5)*0.001
		}
		return -0.5 - 0.5*diff/5
	}

	myTrees, oppTrees := gs.treeCounts()
	switch {
	case myTrees > oppTrees:
		return 0.25 + my*0.001
	case myTrees < oppTrees:
		return -0.25 + my*0.001
	default:
		return my * 0.001
	}
}

func (gs *GameState) treeCounts() (mine, theirs int) {
	mine = lo.CountBy(gs.Trees, func(t Tree) bool { return t.IsMine })
	return mine, len(gs.Trees) - mine
}
