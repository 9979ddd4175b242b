package main

import (
	"flag"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"zole/internal/bots"
	"zole/internal/engine"
	"zole/internal/stats"
)

func main() {
	seedFlag := flag.Int64("seed", 14, "random seed")
	gamesFlag := flag.Int("games", 2000, "number of rounds to play")
	incentiveFlag := flag.Int("incentive", 0, "large-player win incentive")
	logDirFlag := flag.String("log-dir", "experiments/tournament", "directory for the performance csv")
	flag.Parse()

	logger := logrus.New()

	table := map[int]bots.Bot{
		0: bots.NewGreedy(*seedFlag + 1),
		1: bots.NewRandom(*seedFlag + 2),
		2: bots.NewGreedy(*seedFlag + 3),
	}

	game := engine.NewGame(*seedFlag)
	tracker := &stats.Tracker{}
	var totals [engine.NumPlayers]float64

	for round := 0; round < *gamesFlag; round++ {
		game.Init()
		for !game.IsOver() {
			legal := game.LegalActions()
			if len(legal) == 0 {
				logger.Fatalf("round %d: no legal actions", round)
			}
			action := table[game.CurrentPlayerID()].ChooseAction(game.Round, legal)
			if _, _, err := game.Step(action); err != nil {
				logger.Fatalf("round %d: %v", round, err)
			}
		}
		tracker.TrackRound(game.Round)
		payoffs, err := engine.Payoffs(game, *incentiveFlag)
		if err != nil {
			logger.Fatalf("round %d: %v", round, err)
		}
		for seat, payoff := range payoffs {
			totals[seat] += float64(payoff)
		}
	}

	var averages [engine.NumPlayers]float64
	for seat := range totals {
		averages[seat] = totals[seat] / float64(*gamesFlag)
	}

	logger.WithFields(logrus.Fields{
		"rounds":  tracker.Rounds,
		"pickups": tracker.PickUpCounts,
	}).Info("tournament finished")
	logger.Infof("points per round: %v", averages)

	csvLog, err := stats.NewLogger(*logDirFlag)
	if err != nil {
		logger.Fatalf("open performance log: %v", err)
	}
	defer csvLog.Close()
	if err := csvLog.LogPerformance(tracker, averages); err != nil {
		logger.Fatalf("write performance log: %v", err)
	}
	logger.Infof("performance log saved in %s", *logDirFlag)
}
