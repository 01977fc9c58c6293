package holdem

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-engine/internal/util"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/equity"
)

// Service exposes the rules engine as a synchronous in-process API over a
// persistence collaborator. The driving layer must ensure a single writer per
// game; no operation here is safe to apply twice.
type Service struct {
	repo      Repository
	evaluator Evaluator
	logger    logrus.FieldLogger

	// decks caches the live deck per hand so dealing doesn't pay the
	// reconstruction cost on every call. Reconstruction is idempotent, so
	// the cache is not load-bearing for correctness.
	mu    sync.Mutex
	decks map[uuid.UUID]*deck.Deck
}

// NewService returns a Service backed by the supplied repository
func NewService(repo Repository, evaluator Evaluator, logger logrus.FieldLogger) *Service {
	if evaluator == nil {
		evaluator = DefaultEvaluator
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Service{
		repo:      repo,
		evaluator: evaluator,
		logger:    logger,
		decks:     make(map[uuid.UUID]*deck.Deck),
	}
}

// StartNewGame seats the named human players plus the requested number of
// bots, deals the first hand, and persists the game
func (s *Service) StartNewGame(playerNames []string, numBots int, opts Options) (*Game, error) {
	players := make([]*Player, 0, len(playerNames)+numBots)
	seat := 0
	for _, name := range playerNames {
		players = append(players, NewPlayer(name, opts.BuyIn, false, seat))
		seat++
	}

	for i := 0; i < numBots; i++ {
		players = append(players, NewPlayer(util.GetRandomName(), opts.BuyIn, true, seat))
		seat++
	}

	game, err := NewGame(players, opts)
	if err != nil {
		return nil, err
	}

	hand, err := game.StartNewHand()
	if err != nil {
		return nil, err
	}
	s.cacheDeck(hand)

	if err := s.repo.SaveGame(game); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"gameId":  game.ID,
		"handId":  hand.ID,
		"players": len(players),
	}).Info("started new game")

	return game, nil
}

// StartNewHand rotates the blinds and deals the next hand of an existing game
func (s *Service) StartNewHand(gameID uuid.UUID) (*Game, error) {
	game, err := s.repo.Game(gameID)
	if err != nil {
		return nil, err
	}

	if game.Status == GameCompleted {
		return nil, fmt.Errorf("game %s is completed", gameID)
	}

	hand, err := game.StartNewHand()
	if err != nil {
		return nil, err
	}
	s.cacheDeck(hand)

	if err := s.repo.SaveGame(game); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"gameId": game.ID,
		"handId": hand.ID,
	}).Info("started new hand")

	return game, nil
}

// CardsDealingActionFinished is called by the driving layer once it has
// presented the dealt cards and betting may begin
func (s *Service) CardsDealingActionFinished(gameID uuid.UUID) error {
	game, err := s.repo.Game(gameID)
	if err != nil {
		return err
	}

	game.CurrentAction = GameActionPlayerAction
	return s.repo.SaveGame(game)
}

// CurrentPlayer returns the player whose turn it is
func (s *Service) CurrentPlayer(gameID uuid.UUID) (*Player, error) {
	game, err := s.repo.Game(gameID)
	if err != nil {
		return nil, err
	}

	return game.CurrentPlayer()
}

// Winners returns the settlement records for a hand
func (s *Service) Winners(handID uuid.UUID) ([]*Winner, error) {
	return s.repo.Winners(handID)
}

// ProcessAction applies one player action to the game: it validates turn
// order, normalizes the action (a call of zero becomes a check, amounts are
// clamped to the stack), applies the chip effects, and advances the turn, the
// street, or the showdown as required.
func (s *Service) ProcessAction(gameID, playerID uuid.UUID, action *PlayerAction) (*Game, error) {
	game, err := s.repo.Game(gameID)
	if err != nil {
		return nil, err
	}

	hand := game.CurrentHand
	if hand == nil {
		return nil, ErrNoHand
	}

	if hand.CurrentPlayerID != playerID {
		return nil, ErrOutOfTurn
	}

	if hand.SkipActions {
		return nil, ErrActionsSuspended
	}

	player, err := game.Player(playerID)
	if err != nil {
		return nil, err
	}

	chipsBefore := player.Chips
	if err := s.normalizeAction(game, player, action); err != nil {
		return nil, err
	}

	if err := player.HandleAction(action); err != nil {
		return nil, err
	}
	player.Actions = append(player.Actions, action)

	if action.Amount != nil && *action.Amount >= chipsBefore {
		player.Status = StatusAllIn
	}

	s.logger.WithFields(logrus.Fields{
		"gameId":   game.ID,
		"playerId": player.ID,
		"action":   action.Type,
	}).Debug("processed action")

	if action.Type == ActionFold {
		// a lone survivor wins immediately, nothing left to rank
		if len(game.PlayersInHand()) == 1 {
			if err := s.finishHand(game); err != nil {
				return nil, err
			}

			return game, s.repo.SaveGame(game)
		}
	}

	// with fewer than two players able to act there is no more betting, but
	// the remaining streets still run out for the showdown
	if len(game.PlayersWhoCanAct()) < 2 && len(game.PlayersInHand()) > 1 {
		hand.SkipActions = true
	}

	closed, err := game.IsNextPlayerPivot()
	if err != nil {
		return nil, err
	}

	if closed {
		if err := s.advance(game); err != nil {
			return nil, err
		}
	} else if !hand.SkipActions {
		game.CurrentAction = GameActionPlayerAction
		if err := game.SwitchToTheNextPlayer(player); err != nil {
			return nil, err
		}
	}

	return game, s.repo.SaveGame(game)
}

// DealNextStreet advances a hand whose betting round is already closed.
// The driving layer calls this to run out the remaining streets when
// SkipActions is set.
func (s *Service) DealNextStreet(gameID uuid.UUID) (*Game, error) {
	game, err := s.repo.Game(gameID)
	if err != nil {
		return nil, err
	}

	if game.CurrentHand == nil {
		return nil, ErrNoHand
	}

	if err := s.advance(game); err != nil {
		return nil, err
	}

	return game, s.repo.SaveGame(game)
}

// WinProbabilities estimates each live player's equity in the current hand.
// It reads a consistent snapshot and never mutates game state.
func (s *Service) WinProbabilities(ctx context.Context, gameID uuid.UUID, iterations int) (map[uuid.UUID]float64, error) {
	game, err := s.repo.Game(gameID)
	if err != nil {
		return nil, err
	}

	hand := game.CurrentHand
	if hand == nil {
		return nil, ErrNoHand
	}

	holeCards := make(map[uuid.UUID]deck.Hand)
	for _, p := range game.PlayersInHand() {
		if len(p.HoleCards) == 2 {
			holeCards[p.ID] = p.HoleCards.Clone()
		}
	}

	estimator := &equity.Estimator{Iterations: iterations}
	return estimator.WinProbabilities(ctx, holeCards, hand.CommunityCards.Clone())
}

// normalizeAction resolves call amounts, converts a zero call to a check,
// clamps call and raise amounts to the player's stack, and moves the pivot on
// a raise. These corrections are policy, not errors.
func (s *Service) normalizeAction(game *Game, player *Player, action *PlayerAction) error {
	hand := game.CurrentHand

	switch action.Type {
	case ActionFold:
		return nil

	case ActionCheck:
		callAmount, err := hand.Pot.CallAmountFor(player.ID)
		if err != nil {
			return err
		}

		if callAmount > 0 {
			return fmt.Errorf("cannot check with an active bet of %d", callAmount)
		}

		action.Amount = nil
		return nil

	case ActionCall:
		callAmount, err := hand.Pot.CallAmountFor(player.ID)
		if err != nil {
			return err
		}

		if callAmount == 0 {
			action.Type = ActionCheck
			action.Amount = nil
			return nil
		}

		if callAmount >= player.Chips {
			callAmount = player.Chips
		}

		action.Amount = Amount(callAmount)
		return hand.AddBet(player.ID, callAmount)

	case ActionRaise:
		if action.Amount == nil || *action.Amount <= 0 {
			return ErrInvalidRaise
		}

		amount := *action.Amount
		if amount >= player.Chips {
			amount = player.Chips
		}
		action.Amount = Amount(amount)

		if err := hand.AddBet(player.ID, amount); err != nil {
			return err
		}

		return game.SetCurrentPlayerToPivot()
	}

	return fmt.Errorf("unknown action type: %s", action.Type)
}

// advance moves a closed betting round forward: to settlement after the
// river, otherwise to the next street
func (s *Service) advance(game *Game) error {
	hand := game.CurrentHand
	hand.CompleteRound()

	if hand.Status == StatusRiver {
		return s.finishHand(game)
	}

	// all-in players show their cards once the betting round ends
	for _, p := range game.Players {
		if p.Status == StatusAllIn {
			p.MustReveal = true
		}
	}

	game.CurrentAction = GameActionDealingCards

	if !hand.SkipActions {
		if err := game.SetRoundsFirstPlayerToCurrent(); err != nil {
			return err
		}
	}

	return hand.DealNextRound(s.handDeck(game))
}

// finishHand settles the showdown: side pots are derived from the hand's
// contributions, winners are paid, and chipless players are eliminated (bots)
// or topped back up to the buy-in (humans)
func (s *Service) finishHand(game *Game) error {
	hand := game.CurrentHand

	hand.CompleteRound()

	eligible := game.PlayersInHand()
	if len(eligible) > 1 {
		hand.Pot.CreateSidePots()

		for _, p := range eligible {
			p.MustReveal = true
		}
	}

	winners, err := hand.CompleteHand(s.evaluator, game.Players)
	if err != nil {
		return err
	}

	for _, w := range winners {
		p, err := game.Player(w.PlayerID)
		if err != nil {
			return err
		}

		p.AddChips(w.PotShare)

		s.logger.WithFields(logrus.Fields{
			"gameId":   game.ID,
			"handId":   hand.ID,
			"playerId": p.ID,
			"potShare": w.PotShare,
		}).Info("player won pot share")
	}

	for _, p := range game.Players {
		if p.Chips > 0 || p.Status == StatusLost {
			continue
		}

		if p.IsBot {
			p.Status = StatusLost
			s.logger.WithFields(logrus.Fields{
				"gameId":   game.ID,
				"playerId": p.ID,
			}).Info("bot eliminated")
		} else {
			p.AddChips(game.Options.BuyIn)
			s.logger.WithFields(logrus.Fields{
				"gameId":   game.ID,
				"playerId": p.ID,
				"buyIn":    game.Options.BuyIn,
			}).Info("player rebought")
		}
	}

	hand.Shutdown()
	game.CurrentAction = GameActionShowOff

	live := 0
	for _, p := range game.Players {
		if p.Status != StatusLost {
			live++
		}
	}
	if live < 2 {
		game.Status = GameCompleted
	}

	s.dropDeck(hand.ID)

	return s.repo.SaveWinners(winners)
}

func (s *Service) cacheDeck(hand *Hand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.decks[hand.ID] = hand.deck
}

func (s *Service) dropDeck(handID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.decks, handID)
}

// handDeck returns the cached live deck for the hand, reconstructing it from
// the dealt cards if the cache doesn't have it
func (s *Service) handDeck(game *Game) *deck.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()

	hand := game.CurrentHand
	if d, ok := s.decks[hand.ID]; ok {
		return d
	}

	d := hand.RestoreDeck(game.Players)
	s.decks[hand.ID] = d

	return d
}
