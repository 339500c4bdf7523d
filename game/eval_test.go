package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateMargin(t *testing.T) {
	t.Run("narrow lead maps into the half-to-one band", func(t *testing.T) {
		gs := snapshot(TurnFacts{MyScore: 4, OppScore: 0})
		require.InDelta(t, 0.5+0.5*4.0/5.0, EvaluateMargin(gs), 1e-9)
	})

	t.Run("big lead saturates with a tie-breaking slope", func(t *testing.T) {
		ahead := snapshot(TurnFacts{MyScore: 15, OppScore: 0})
		farAhead := snapshot(TurnFacts{MyScore: 30, OppScore: 0})
		require.Greater(t, EvaluateMargin(ahead), 1.0)
		require.Greater(t, EvaluateMargin(farAhead), EvaluateMargin(ahead),
			"bigger routs still order above smaller ones")
	})

	t.Run("deficits mirror leads", func(t *testing.T) {
		gs := snapshot(TurnFacts{MyScore: 0, OppScore: 4})
		require.InDelta(t, -(0.5 + 0.5*4.0/5.0), EvaluateMargin(gs), 1e-9)
	})

	t.Run("unconverted sun is worth a third of a point", func(t *testing.T) {
		gs := snapshot(TurnFacts{MySun: 3})
		require.InDelta(t, 0.5+0.5*1.0/5.0, EvaluateMargin(gs), 1e-9)
	})

	t.Run("exact ties break on standing trees", func(t *testing.T) {
		gs := snapshot(TurnFacts{Trees: []Tree{{CellIndex: 0, Size: 1, IsMine: true}}})
		require.InDelta(t, 0.25, EvaluateMargin(gs), 1e-9)

		gs = snapshot(TurnFacts{Trees: []Tree{{CellIndex: 0, Size: 1, IsMine: false}}})
		require.InDelta(t, -0.25, EvaluateMargin(gs), 1e-9)
	})

	t.Run("dead-even position is near zero but not flat", func(t *testing.T) {
		gs := snapshot(TurnFacts{MyScore: 10, OppScore: 10})
		require.InDelta(t, 0.01, EvaluateMargin(gs), 1e-9,
			"the residual slope keeps a gradient for the search")
	})
}
