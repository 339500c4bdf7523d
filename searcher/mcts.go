package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"canopy/experiments/metrics"
	"canopy/game"
)

type Option func(m *MCTS)

// MCTS runs single-threaded Monte-Carlo tree search over the game's
// transition function: UCT selection, uniform-random expansion, random-policy
// rollout to the terminal day, and backpropagation along parent links. The
// tree lives for exactly one turn's decision.
type MCTS struct {
	iterations  int
	deadline    time.Duration
	exploration float64
	evaluate    game.Evaluate
	rng         *rand.Rand
	metrics     metrics.Collector
	lastMetric  metrics.SearchMetric
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithDeadline caps the wall-clock search budget. The deadline preempts the
// loop at iteration boundaries only, never mid-transition.
func WithDeadline(deadline time.Duration) Option {
	return func(m *MCTS) {
		if deadline > 0 {
			m.deadline = deadline
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithSeed fixes the rollout and expansion rng. Two searches over the same
// root state and seed choose the same action.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:  DefaultIterations,
		exploration: DefaultExploration,
		evaluate:    game.EvaluateMargin,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindAction searches from state until the iteration budget or deadline is
// exhausted and returns the most-visited root action. It always returns an
// action drawn from the state's legal-action list, falling back to the first
// legal action (and finally Wait) when the search produced nothing.
func (m *MCTS) FindAction(state game.State) game.Move {
	m.metrics.Start()
	root := newNode(nil, nil, state)

	start := time.Now()
	for i := 0; i < m.iterations; i++ {
		if m.deadline > 0 && time.Since(start) >= m.deadline {
			break
		}
		m.simulate(root, state)
		m.metrics.AddIteration()
	}

	m.metrics.SetTreeNodes(root.size())
	m.lastMetric = m.metrics.Complete()

	return m.bestAction(root, state)
}

// Metric reports the most recent search's metrics (zero-valued unless the
// search was built WithMetrics).
func (m *MCTS) Metric() metrics.SearchMetric {
	return m.lastMetric
}

func (m *MCTS) simulate(root *node, state game.State) {
	newNode, newState := m.selectThenExpand(root, state)
	value := m.rollout(newState)
	newNode.backup(value)
}

func (m *MCTS) selectThenExpand(root *node, state game.State) (*node, game.State) {
	parent := root
	child, state, added := parent.selectOrExpand(state, m.rng, m.exploration)
	for !added && child != parent {
		parent = child
		child, state, added = parent.selectOrExpand(state, m.rng, m.exploration)
	}
	return child, state
}

// rollout plays uniformly random actions for both sides to the terminal day
// and scores the outcome. No nodes are created along the way.
func (m *MCTS) rollout(state game.State) float64 {
	moves := state.LegalMoves()
	for len(moves) > 0 {
		move := moves[m.rng.Intn(len(moves))]
		state = state.Play(move)
		moves = state.LegalMoves()
	}
	return m.evaluate(state)
}

func (m *MCTS) bestAction(root *node, state game.State) game.Move {
	if best := root.mostVisited(); best != nil {
		return best.action
	}

	// Zero completed iterations or no expandable action: defined fallback.
	if moves := state.LegalMoves(); len(moves) > 0 {
		log.Warn().Msg("search produced no children, falling back to a legal action")
		for _, move := range moves {
			if action, ok := move.(game.Action); ok && action.Type == game.WaitAction {
				return move
			}
		}
		return moves[0]
	}
	log.Warn().Msg("no legal actions supplied, falling back to WAIT")
	return game.Wait()
}
