package searcher

import "math"

// Hyperparameters for MCTS

// DefaultIterations is the per-turn simulation budget when no deadline or
// explicit budget is configured.
const DefaultIterations = 1000

// DefaultExploration is the UCT exploration constant C.
var DefaultExploration = math.Sqrt2
