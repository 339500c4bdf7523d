// Self-play experiment: pits two search configurations against each other
// for a number of offline matches and writes game and move metrics as CSV.
package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"canopy/engine"
	"canopy/experiments/metrics"
	"canopy/game"
	"canopy/searcher"
)

// Point-symmetric starting cells on the outer ring of the standard board.
var (
	firstStart  = []int{19, 25}
	secondStart = []int{28, 34}
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	viper.SetDefault("games", 10)
	viper.SetDefault("concurrency", 4)
	viper.SetDefault("iterations", 400)
	viper.SetDefault("iterations2", 400)
	viper.SetDefault("exploration", searcher.DefaultExploration)
	viper.SetDefault("out-dir", "experiments/selfplay")
	viper.SetEnvPrefix("canopy")
	viper.AutomaticEnv()

	viper.SetConfigName("selfplay")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("bad config file")
		}
	}

	games := viper.GetInt("games")
	concurrency := viper.GetInt("concurrency")

	gameRecords := make([]metrics.GameRecord, games)
	moveRecords := make([][]metrics.MoveRecord, games)

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			gameMetric, moves := runGame()
			gameRecords[i] = metrics.GameRecord{ID: i, GameMetric: gameMetric}
			for _, move := range moves {
				moveRecords[i] = append(moveRecords[i], metrics.MoveRecord{
					Game:       i,
					MoveMetric: move,
				})
			}
			log.Info().Int("game", i).Str("winner", gameMetric.Winner).Msg("game finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}

	writer, err := metrics.NewWriter(viper.GetString("out-dir"))
	if err != nil {
		log.Fatal().Err(err).Msg("creating metrics writer")
	}
	if err := writer.WriteGames(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("writing game records")
	}
	var allMoves []metrics.MoveRecord
	for _, moves := range moveRecords {
		allMoves = append(allMoves, moves...)
	}
	if err := writer.WriteMoves(allMoves); err != nil {
		log.Fatal().Err(err).Msg("writing move records")
	}
	log.Info().Str("dir", writer.BaseDir()).Msg("experiment written")
}

func runGame() (metrics.GameMetric, []metrics.MoveMetric) {
	board := game.StandardBoard()
	state := game.NewMatchState(board, game.StandardRules(), firstStart, secondStart)

	first := searcher.NewMCTS(
		searcher.WithIterations(viper.GetInt("iterations")),
		searcher.WithExploration(viper.GetFloat64("exploration")),
		searcher.WithMetrics(),
	)
	second := searcher.NewMCTS(
		searcher.WithIterations(viper.GetInt("iterations2")),
		searcher.WithExploration(viper.GetFloat64("exploration")),
		searcher.WithMetrics(),
	)

	e := engine.LocalEngine(state, first, second)
	_, gameMetric, moves := e.Run()
	return gameMetric, moves
}
