package game

// Rules is the fixed cost and reward schedule of a match. All values are in
// sun except RichnessBonus, which is in score points.
type Rules struct {
	FinalDay      int    // day index that ends the match
	GrowCost      [4]int // indexed by destination size
	SeedBaseCost  int
	SeedSurcharge int // extra sun per same-owner seed already standing
	CompleteCost  int
	RichnessBonus [4]int // score bonus indexed by richness tier
}

// StandardRules returns the schedule of the standard 24-day match.
func StandardRules() Rules {
	return Rules{
		FinalDay:      24,
		GrowCost:      [4]int{0, 1, 3, 7},
		SeedBaseCost:  4,
		SeedSurcharge: 1,
		CompleteCost:  4,
		RichnessBonus: [4]int{0, 0, 2, 4},
	}
}

// SeedCost is the sun cost of a Seed action for a side that already has
// standingSeeds seeds on the board.
func (r Rules) SeedCost(standingSeeds int) int {
	return r.SeedBaseCost + r.SeedSurcharge*standingSeeds
}

// legalActions generates the full action set for one side at a snapshot:
// Wait, plus Grow/Complete/Seed for every non-dormant tree of that side the
// side can afford. This mirrors the candidate list the host supplies for the
// root player, so simulated successors see the same action space.
func legalActions(gs *GameState, mine bool) []Action {
	sun := gs.MySun
	if !mine {
		sun = gs.OppSun
	}
	seedCost := gs.Rules.SeedCost(gs.countSeeds(mine))

	actions := []Action{Wait()}
	for _, tree := range gs.Trees {
		if tree.IsMine != mine || tree.IsDormant {
			continue
		}

		switch {
		case tree.Size < MaxTreeSize:
			if sun >= gs.Rules.GrowCost[tree.Size+1] {
				actions = append(actions, Grow(tree.CellIndex))
			}
		default:
			if sun >= gs.Rules.CompleteCost {
				actions = append(actions, Complete(tree.CellIndex))
			}
		}

		if tree.Size >= 1 && sun >= seedCost {
			for _, target := range gs.Board.CellsWithin(tree.CellIndex, tree.Size) {
				if gs.Board.Richness(target) == 0 || gs.treeAt(target) != nil {
					continue
				}
				actions = append(actions, Seed(tree.CellIndex, target))
			}
		}
	}
	return actions
}

func (gs *GameState) countSeeds(mine bool) int {
	count := 0
	for _, tree := range gs.Trees {
		if tree.IsMine == mine && tree.Size == 0 {
			count++
		}
	}
	return count
}
