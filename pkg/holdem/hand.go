package holdem

import (
	"github.com/google/uuid"

	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/pot"
)

// HandStatus is the community-card street a hand is on
type HandStatus string

// street constants
const (
	StatusPreflop  HandStatus = "preflop"
	StatusFlop     HandStatus = "flop"
	StatusTurn     HandStatus = "turn"
	StatusRiver    HandStatus = "river"
	StatusShutdown HandStatus = "shutdown"
)

// Hand is one dealt hand of hold'em: the community-card progression, the pot,
// and the turn anchors for the betting rounds.
//
// FirstPlayerID is the player after the big blind and is fixed for the whole
// hand. PivotPlayerID is the player whose upcoming turn closes the current
// betting round; it starts at FirstPlayerID and moves to the raiser on every
// raise. SkipActions is set when fewer than two players can still act, so the
// driving layer advances streets without collecting bets.
type Hand struct {
	ID             uuid.UUID  `json:"id"`
	CommunityCards deck.Hand  `json:"communityCards"`
	Status         HandStatus `json:"status"`
	Pot            *pot.Pot   `json:"pot"`
	FirstPlayerID  uuid.UUID  `json:"firstPlayerId"`
	PivotPlayerID  uuid.UUID  `json:"pivotPlayerId"`
	CurrentPlayerID uuid.UUID `json:"currentPlayerId"`
	SkipActions    bool       `json:"skipActions"`

	// deck is not persisted; it is restored from the dealt cards on demand
	deck *deck.Deck
}

// NewHand returns a fresh preflop hand anchored at the first player to act
func NewHand(firstPlayer *Player) *Hand {
	return &Hand{
		ID:              uuid.New(),
		CommunityCards:  make(deck.Hand, 0, 5),
		Status:          StatusPreflop,
		Pot:             pot.New(),
		FirstPlayerID:   firstPlayer.ID,
		PivotPlayerID:   firstPlayer.ID,
		CurrentPlayerID: firstPlayer.ID,
		deck:            deck.New(),
	}
}

// Deck returns the hand's live deck, restoring it from the dealt cards if the
// hand was loaded from persistence
func (h *Hand) Deck(players []*Player) *deck.Deck {
	if h.deck == nil {
		h.deck = h.RestoreDeck(players)
	}

	return h.deck
}

// RestoreDeck rebuilds a deck from the cards already dealt (hole cards plus
// community cards). The remaining cards are reshuffled, so only the set of
// undealt cards carries over, not their order.
func (h *Hand) RestoreDeck(players []*Player) *deck.Deck {
	drawn := make([]*deck.Card, 0, len(players)*2+len(h.CommunityCards))
	for _, p := range players {
		drawn = append(drawn, p.HoleCards...)
	}
	drawn = append(drawn, h.CommunityCards...)

	return deck.NewFromDrawn(drawn)
}

// DealHoleCards deals two fresh cards to every player still in the game.
// Players who busted out receive none.
func (h *Hand) DealHoleCards(players []*Player) error {
	for _, p := range players {
		p.ResetHoleCards()

		if p.Status == StatusLost {
			continue
		}

		for i := 0; i < 2; i++ {
			card, err := h.deck.Draw()
			if err != nil {
				return err
			}

			p.HoleCards.AddCard(card)
		}
	}

	return nil
}

// DealNextRound advances the hand one street: preflop deals the three flop
// cards, flop and turn each deal one card, and river closes the hand without
// dealing. Advancing a closed hand returns ErrHandComplete.
func (h *Hand) DealNextRound(d *deck.Deck) error {
	if d != nil {
		h.deck = d
	}

	switch h.Status {
	case StatusPreflop:
		for i := 0; i < 3; i++ {
			if err := h.addCommunityCard(); err != nil {
				return err
			}
		}
		h.Status = StatusFlop
	case StatusFlop:
		if err := h.addCommunityCard(); err != nil {
			return err
		}
		h.Status = StatusTurn
	case StatusTurn:
		if err := h.addCommunityCard(); err != nil {
			return err
		}
		h.Status = StatusRiver
	case StatusRiver:
		h.Status = StatusShutdown
	default:
		return ErrHandComplete
	}

	return nil
}

func (h *Hand) addCommunityCard() error {
	card, err := h.deck.Draw()
	if err != nil {
		return err
	}

	h.CommunityCards.AddCard(card)
	return nil
}

// Shutdown marks the hand as finished. A hand can shut down from any street
// when a fold leaves a single player in contention.
func (h *Hand) Shutdown() {
	h.Status = StatusShutdown
}

// AddBet records a contribution against the hand's pot
func (h *Hand) AddBet(playerID uuid.UUID, amount int) error {
	return h.Pot.AddContribution(playerID, amount)
}

// CompleteRound folds the current betting round into the main pot
func (h *Hand) CompleteRound() {
	h.Pot.CompleteRound()
}

// CompleteHand settles the hand: the pot and every side pot are distributed
// among the eligible players using the supplied evaluator
func (h *Hand) CompleteHand(evaluator Evaluator, players []*Player) ([]*Winner, error) {
	return Settle(evaluator, h, players)
}
