package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"canopy/experiments/metrics"
	"canopy/game"
)

// Agent decides one move for the side "me" of the state it is handed.
type Agent interface {
	FindAction(state game.State) game.Move
	Metric() metrics.SearchMetric
}

// Engine drives an offline match between two agents over one canonical
// state. The canonical perspective belongs to the first agent; the second
// agent is handed the mirrored position each time it is to move.
type Engine struct {
	State  *game.GameState
	Agents [2]Agent
}

func LocalEngine(state *game.GameState, first, second Agent) *Engine {
	return &Engine{
		State:  state,
		Agents: [2]Agent{first, second},
	}
}

// Run executes the match to its final day and returns the winner from the
// first agent's perspective, plus the per-move search metrics.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	var moves []metrics.MoveMetric

	// A finished match is at most two plies per day; the cap only guards
	// against a transition bug stalling the loop.
	const maxSteps = 500

	step := 1
	for e.State.Winner() == "" && step <= maxSteps {
		mover := e.State.Player()

		var move game.Move
		var agent Agent
		if mover == game.Me {
			agent = e.Agents[0]
			move = agent.FindAction(e.State)
		} else {
			agent = e.Agents[1]
			move = agent.FindAction(e.State.Mirror())
		}

		e.State = e.State.Play(move).(*game.GameState)

		moves = append(moves, metrics.MoveMetric{
			Step:         step,
			Player:       mover,
			SearchMetric: agent.Metric(),
		})
		step++
	}

	winner := e.State.Winner()
	log.Info().Str("winner", winner).Int("moves", step-1).Msg("match over")

	gameMetric := metrics.GameMetric{
		Winner:     winner,
		TotalMoves: step - 1,
		Duration:   time.Since(start),
	}
	return winner, gameMetric, moves
}
