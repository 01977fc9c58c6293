package holdem

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/poker"
	"holdem-engine/pkg/pot"
)

// Evaluator scores the best five-card hand a set of cards can make
type Evaluator interface {
	Evaluate(cards []*deck.Card) (*poker.HandRank, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface
type EvaluatorFunc func(cards []*deck.Card) (*poker.HandRank, error)

// Evaluate implements Evaluator
func (f EvaluatorFunc) Evaluate(cards []*deck.Card) (*poker.HandRank, error) {
	return f(cards)
}

// DefaultEvaluator evaluates hands with the poker package
var DefaultEvaluator Evaluator = EvaluatorFunc(poker.Evaluate)

// Winner is a settlement record: the share of the pots a player won in a hand.
// A player who wins both the main pot and a side pot gets one row with the
// shares summed.
type Winner struct {
	HandID   uuid.UUID `json:"handId"`
	PlayerID uuid.UUID `json:"playerId"`
	PotShare int       `json:"potShare"`
}

// Settle distributes the main pot and every side pot among the eligible
// players. If only one eligible player remains (everyone else folded), they
// win the whole main pot and no hands are ranked.
//
// Pots are split evenly among the tied best hands. Remainder chips that do
// not divide evenly go one each to the lowest-seated tied winners.
func Settle(evaluator Evaluator, h *Hand, players []*Player) ([]*Winner, error) {
	eligible := make([]*Player, 0, len(players))
	for _, p := range players {
		if p.InHand() {
			eligible = append(eligible, p)
		}
	}

	if len(eligible) == 0 {
		return nil, ErrNoEligiblePlayers
	}

	if len(eligible) == 1 {
		return []*Winner{{
			HandID:   h.ID,
			PlayerID: eligible[0].ID,
			PotShare: h.Pot.MainPot,
		}}, nil
	}

	ranks := make(map[uuid.UUID]*poker.HandRank, len(eligible))
	for _, p := range eligible {
		cards := make([]*deck.Card, 0, len(p.HoleCards)+len(h.CommunityCards))
		cards = append(cards, p.HoleCards...)
		cards = append(cards, h.CommunityCards...)

		rank, err := evaluator.Evaluate(cards)
		if err != nil {
			return nil, fmt.Errorf("could not evaluate hand for player %s: %w", p.ID, err)
		}

		ranks[p.ID] = rank
	}

	winners := make([]*Winner, 0, len(eligible))

	// side pots that no eligible player can claim fold back into the main pot
	mainAmount := h.Pot.MainPot
	sidePots := make([]*pot.SidePot, 0, len(h.Pot.SidePots))
	for _, sp := range h.Pot.SidePots {
		if len(eligibleFor(sp, eligible)) == 0 {
			mainAmount += sp.Amount
			continue
		}

		sidePots = append(sidePots, sp)
	}

	winners = award(winners, h.ID, mainAmount, bestPlayers(ranks, eligible))
	for _, sp := range sidePots {
		winners = award(winners, h.ID, sp.Amount, bestPlayers(ranks, eligibleFor(sp, eligible)))
	}

	return winners, nil
}

// eligibleFor filters the still-alive players down to the side pot's eligible set
func eligibleFor(sp *pot.SidePot, eligible []*Player) []*Player {
	players := make([]*Player, 0, len(eligible))
	for _, p := range eligible {
		if sp.HasPlayer(p.ID) {
			players = append(players, p)
		}
	}

	return players
}

// bestPlayers returns the players holding the maximal rank, in seat order
func bestPlayers(ranks map[uuid.UUID]*poker.HandRank, players []*Player) []*Player {
	var best *poker.HandRank
	for _, p := range players {
		if ranks[p.ID].Compare(best) > 0 {
			best = ranks[p.ID]
		}
	}

	winners := make([]*Player, 0, len(players))
	for _, p := range players {
		if ranks[p.ID].Compare(best) == 0 {
			winners = append(winners, p)
		}
	}

	sort.Slice(winners, func(i, j int) bool {
		return winners[i].Seat < winners[j].Seat
	})

	return winners
}

// award splits amount evenly among the winning players, merging shares into
// existing settlement rows. The first (amount mod n) players get the odd chips.
func award(winners []*Winner, handID uuid.UUID, amount int, winningPlayers []*Player) []*Winner {
	if amount == 0 || len(winningPlayers) == 0 {
		return winners
	}

	share := amount / len(winningPlayers)
	remainder := amount % len(winningPlayers)

	for i, p := range winningPlayers {
		potShare := share
		if i < remainder {
			potShare++
		}

		found := false
		for _, w := range winners {
			if w.PlayerID == p.ID {
				w.PotShare += potShare
				found = true
				break
			}
		}

		if !found {
			winners = append(winners, &Winner{
				HandID:   handID,
				PlayerID: p.ID,
				PotShare: potShare,
			})
		}
	}

	return winners
}
