// The live agent: reads the board and per-turn state from stdin, answers
// with one action per turn on stdout. All logging goes to stderr so the
// host only ever sees action lines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"canopy/game"
	"canopy/protocol"
	"canopy/searcher"
)

func main() {
	iterations := flag.Int("iterations", 100000, "max search iterations per turn")
	budget := flag.Duration("budget", 90*time.Millisecond, "wall-clock search budget per turn")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Stdin, os.Stdout, *iterations, *budget); err != nil {
		if errors.Is(err, io.EOF) {
			return // host closed the stream, match over
		}
		log.Fatal().Err(err).Msg("agent stopped")
	}
}

func run(in io.Reader, out io.Writer, iterations int, budget time.Duration) error {
	reader := protocol.NewReader(in)
	board, err := reader.ReadBoard()
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	rules := game.StandardRules()
	log.Info().Int("cells", len(board.Cells)).Msg("board received")

	mcts := searcher.NewMCTS(
		searcher.WithIterations(iterations),
		searcher.WithDeadline(budget),
		searcher.WithMetrics(),
	)

	for {
		state, err := reader.ReadTurn(board, rules)
		if err != nil {
			return err
		}

		move := mcts.FindAction(state)

		metric := mcts.Metric()
		log.Debug().
			Int("day", state.Day).
			Int("iterations", metric.Iterations).
			Int("tree_nodes", metric.TreeNodes).
			Dur("took", metric.Duration).
			Stringer("action", move).
			Msg("turn decided")

		if err := protocol.WriteAction(out, move); err != nil {
			return err
		}
	}
}
