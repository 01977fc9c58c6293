package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHand(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("first", 1000, false, 0)
	h := NewHand(p)

	a.Equal(StatusPreflop, h.Status)
	a.Equal(p.ID, h.FirstPlayerID)
	a.Equal(p.ID, h.PivotPlayerID)
	a.Equal(p.ID, h.CurrentPlayerID)
	a.Empty(h.CommunityCards)
	a.Equal(0, h.Pot.Total())
	a.False(h.SkipActions)
}

func TestHand_DealHoleCards(t *testing.T) {
	a := assert.New(t)

	players := []*Player{
		NewPlayer("a", 1000, false, 0),
		NewPlayer("b", 1000, false, 1),
		NewPlayer("c", 1000, false, 2),
	}
	players[2].Status = StatusLost

	h := NewHand(players[0])
	a.NoError(h.DealHoleCards(players))

	a.Len(players[0].HoleCards, 2)
	a.Len(players[1].HoleCards, 2)
	a.Empty(players[2].HoleCards)

	seen := make(map[string]bool)
	for _, p := range players[:2] {
		for _, c := range p.HoleCards {
			a.False(seen[c.String()])
			seen[c.String()] = true
		}
	}
}

func TestHand_DealNextRound(t *testing.T) {
	a := assert.New(t)

	h := NewHand(NewPlayer("a", 1000, false, 0))

	a.NoError(h.DealNextRound(nil))
	a.Equal(StatusFlop, h.Status)
	a.Len(h.CommunityCards, 3)

	a.NoError(h.DealNextRound(nil))
	a.Equal(StatusTurn, h.Status)
	a.Len(h.CommunityCards, 4)

	a.NoError(h.DealNextRound(nil))
	a.Equal(StatusRiver, h.Status)
	a.Len(h.CommunityCards, 5)

	a.NoError(h.DealNextRound(nil))
	a.Equal(StatusShutdown, h.Status)
	a.Len(h.CommunityCards, 5)

	a.Equal(ErrHandComplete, h.DealNextRound(nil))
}

func TestHand_RestoreDeck(t *testing.T) {
	a := assert.New(t)

	players := []*Player{
		NewPlayer("a", 1000, false, 0),
		NewPlayer("b", 1000, false, 1),
	}

	h := NewHand(players[0])
	a.NoError(h.DealHoleCards(players))
	a.NoError(h.DealNextRound(nil))

	restored := h.RestoreDeck(players)
	a.Equal(52-7, restored.CardsLeft())

	for _, p := range players {
		for _, c := range p.HoleCards {
			a.False(restored.HasCard(c))
		}
	}
	for _, c := range h.CommunityCards {
		a.False(restored.HasCard(c))
	}
}

func TestHand_Shutdown(t *testing.T) {
	a := assert.New(t)

	h := NewHand(NewPlayer("a", 1000, false, 0))
	a.NoError(h.DealNextRound(nil))

	h.Shutdown()
	a.Equal(StatusShutdown, h.Status)
	a.Equal(ErrHandComplete, h.DealNextRound(nil))
}
