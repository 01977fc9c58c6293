package main

import (
	"context"
	"flag"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"holdem-engine/internal/config"
	"holdem-engine/pkg/bot"
	"holdem-engine/pkg/holdem"
	"holdem-engine/pkg/holdem/memstore"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var hands = flag.Int("hands", 10, "the maximum number of hands to play")
var bots = flag.Int("bots", 0, "override the number of bots from the configuration")
var equity = flag.Bool("equity", false, "log preflop win probabilities each hand")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	opts := holdem.DefaultOptions()
	if cfg.Game.SmallBlind > 0 {
		opts.SmallBlind = cfg.Game.SmallBlind
	}
	if cfg.Game.BigBlind > 0 {
		opts.BigBlind = cfg.Game.BigBlind
	}
	if cfg.Game.BuyIn > 0 {
		opts.BuyIn = cfg.Game.BuyIn
	}

	numBots := cfg.Bots.Count
	if *bots > 0 {
		numBots = *bots
	}
	if numBots < 2 {
		numBots = 2
	}

	service := holdem.NewService(memstore.New(), nil, logrus.StandardLogger())
	policy := bot.NewRandomPolicy()

	game, err := service.StartNewGame(nil, numBots, opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not start game")
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"gameId":  game.ID,
		"bots":    numBots,
	}).Info("simulation started")

	for handNum := 1; ; handNum++ {
		if err := playHand(service, policy, game, cfg.Equity.Iterations); err != nil {
			logrus.WithError(err).Fatal("hand could not be completed")
		}

		logChipCounts(game, handNum)

		if game.Status == holdem.GameCompleted {
			logrus.Info("game completed, one player remains")
			break
		}

		if handNum >= *hands {
			break
		}

		if game, err = service.StartNewHand(game.ID); err != nil {
			logrus.WithError(err).Fatal("could not start hand")
		}
	}
}

// playHand drives one hand to completion using the bot policy for every seat
func playHand(service *holdem.Service, policy bot.Policy, game *holdem.Game, equityIterations int) error {
	if err := service.CardsDealingActionFinished(game.ID); err != nil {
		return err
	}

	if *equity {
		logEquity(service, game, equityIterations)
	}

	for game.CurrentHand.Status != holdem.StatusShutdown {
		if game.CurrentHand.SkipActions {
			next, err := service.DealNextStreet(game.ID)
			if err != nil {
				return err
			}

			*game = *next
			continue
		}

		if game.CurrentAction == holdem.GameActionDealingCards {
			if err := service.CardsDealingActionFinished(game.ID); err != nil {
				return err
			}
		}

		player, err := service.CurrentPlayer(game.ID)
		if err != nil {
			return err
		}

		callAmount, err := game.CurrentHand.Pot.CallAmountFor(player.ID)
		if err != nil {
			return err
		}

		next, err := service.ProcessAction(game.ID, player.ID, policy.Act(game, player, callAmount))
		if err != nil {
			return err
		}

		*game = *next
	}

	return nil
}

func logEquity(service *holdem.Service, game *holdem.Game, iterations int) {
	probabilities, err := service.WinProbabilities(context.Background(), game.ID, iterations)
	if err != nil {
		logrus.WithError(err).Warn("could not estimate equity")
		return
	}

	for _, p := range game.Players {
		if probability, ok := probabilities[p.ID]; ok {
			logrus.WithFields(logrus.Fields{
				"player": p.Name,
				"cards":  p.HoleCards.String(),
				"equity": probability,
			}).Info("preflop equity")
		}
	}
}

func logChipCounts(game *holdem.Game, handNum int) {
	players := make([]*holdem.Player, len(game.Players))
	copy(players, game.Players)
	sort.Slice(players, func(i, j int) bool {
		return players[i].Chips > players[j].Chips
	})

	for _, p := range players {
		logrus.WithFields(logrus.Fields{
			"hand":   handNum,
			"player": p.Name,
			"chips":  p.Chips,
			"status": p.Status,
		}).Info("chip count")
	}
}

func setupLogger() {
	if lvl := config.Instance().LogLevel; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
