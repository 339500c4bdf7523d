package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"canopy/experiments/metrics"
	"canopy/game"
	"canopy/searcher"
)

// waitAgent always waits, so a match it plays is pure day settlement.
type waitAgent struct{}

func (waitAgent) FindAction(game.State) game.Move { return game.Wait() }
func (waitAgent) Metric() metrics.SearchMetric    { return metrics.SearchMetric{} }

func matchState(t *testing.T) *game.GameState {
	t.Helper()
	board := game.StandardBoard()
	// Point-symmetric outer-ring starts, far enough apart that no tree ever
	// shadows another at size one.
	return game.NewMatchState(board, game.StandardRules(), []int{19, 25}, []int{28, 34})
}

func TestRunWaitingMatchIsADraw(t *testing.T) {
	engine := LocalEngine(matchState(t), waitAgent{}, waitAgent{})

	winner, gameMetric, moves := engine.Run()

	require.Equal(t, game.Draw, winner)
	require.Equal(t, game.Draw, gameMetric.Winner)
	require.Equal(t, engine.State.Rules.FinalDay, engine.State.Day)

	// Two Wait plies per day for the full match.
	require.Equal(t, 2*engine.State.Rules.FinalDay, gameMetric.TotalMoves)
	require.Len(t, moves, gameMetric.TotalMoves)

	// Unshadowed size-1 trees earn one sun each at every settlement.
	require.Equal(t, 2*engine.State.Rules.FinalDay, engine.State.MySun)
	require.Equal(t, engine.State.MySun, engine.State.OppSun)
	require.Zero(t, engine.State.MyScore)
	require.Zero(t, engine.State.OppScore)
}

func TestRunAlternatesPlies(t *testing.T) {
	engine := LocalEngine(matchState(t), waitAgent{}, waitAgent{})

	_, _, moves := engine.Run()

	for i, move := range moves {
		require.Equal(t, i+1, move.Step)
		if i%2 == 0 {
			require.Equal(t, game.Me, move.Player)
		} else {
			require.Equal(t, game.Opponent, move.Player)
		}
	}
}

func TestRunSearchedMatch(t *testing.T) {
	first := searcher.NewMCTS(
		searcher.WithIterations(25),
		searcher.WithSeed(7),
		searcher.WithMetrics(),
	)
	second := searcher.NewMCTS(
		searcher.WithIterations(25),
		searcher.WithSeed(11),
		searcher.WithMetrics(),
	)
	engine := LocalEngine(matchState(t), first, second)

	winner, gameMetric, moves := engine.Run()

	require.Contains(t, []string{game.Me, game.Opponent, game.Draw}, winner)
	require.Equal(t, engine.State.Rules.FinalDay, engine.State.Day)
	require.NotEmpty(t, moves)
	require.LessOrEqual(t, gameMetric.TotalMoves, 500)
	require.Positive(t, gameMetric.Duration)

	for _, move := range moves {
		require.Positive(t, move.Iterations)
		require.Positive(t, move.TreeNodes)
	}
}
