package pot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ErrNegativeCallAmount is an error when a computed call amount is below zero.
// It indicates corrupted contribution state and is not recoverable.
var ErrNegativeCallAmount = errors.New("call amount cannot be negative")

// Contribution tracks how many chips a single player has put into the pot.
// Contributions accumulate across the whole hand; they are not cleared
// between betting rounds so side pots can be derived at hand end.
type Contribution struct {
	PlayerID uuid.UUID `json:"playerId"`
	Amount   int       `json:"amount"`
}

// SidePot is a pot layer restricted to the players who contributed at least
// the layer's threshold. Immutable once created.
type SidePot struct {
	Amount            int         `json:"amount"`
	EligiblePlayerIDs []uuid.UUID `json:"eligiblePlayerIds"`
}

// HasPlayer returns true if the player is eligible for the side pot
func (s *SidePot) HasPlayer(playerID uuid.UUID) bool {
	for _, id := range s.EligiblePlayerIDs {
		if id == playerID {
			return true
		}
	}

	return false
}

// Pot provides per-round and per-hand contribution accounting for a single
// dealt hand
type Pot struct {
	MainPot         int             `json:"mainPot"`
	CurrentRoundPot int             `json:"currentRoundPot"`
	Contributions   []*Contribution `json:"contributions"`
	SidePots        []*SidePot      `json:"sidePots"`
}

// New instantiates an empty pot
func New() *Pot {
	return &Pot{
		Contributions: make([]*Contribution, 0),
		SidePots:      make([]*SidePot, 0),
	}
}

// AddContribution accumulates chips into the player's contribution and the
// current round pot. The amount must be positive; callers are responsible for
// clamping the amount to the player's stack first.
func (p *Pot) AddContribution(playerID uuid.UUID, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("contribution must be positive, got %d", amount)
	}

	for _, c := range p.Contributions {
		if c.PlayerID == playerID {
			c.Amount += amount
			p.CurrentRoundPot += amount
			return nil
		}
	}

	p.Contributions = append(p.Contributions, &Contribution{
		PlayerID: playerID,
		Amount:   amount,
	})
	p.CurrentRoundPot += amount

	return nil
}

// CallAmountFor returns how many chips the player must add to match the
// largest contribution
func (p *Pot) CallAmountFor(playerID uuid.UUID) (int, error) {
	var playerAmount, maxAmount int
	for _, c := range p.Contributions {
		if c.PlayerID == playerID {
			playerAmount = c.Amount
		}

		if c.Amount > maxAmount {
			maxAmount = c.Amount
		}
	}

	callAmount := maxAmount - playerAmount
	if callAmount < 0 {
		return 0, ErrNegativeCallAmount
	}

	return callAmount, nil
}

// CompleteRound folds the current round pot into the main pot.
// Contributions are kept; CreateSidePots needs the full per-hand amounts.
func (p *Pot) CompleteRound() {
	p.MainPot += p.CurrentRoundPot
	p.CurrentRoundPot = 0
}

// CreateSidePots derives side pots from the recorded contributions and must
// be called once, at hand end, after the final CompleteRound.
//
// Contributions are sorted ascending; the smallest level is the base layer
// shared by every contributor and stays in the main pot. Each higher distinct
// level becomes one side pot whose eligible players are the contributors who
// put in at least that much. The side-pot total is moved out of the main pot,
// so MainPot plus the side pots always equals the total contributed.
func (p *Pot) CreateSidePots() {
	if len(p.SidePots) > 0 || len(p.Contributions) == 0 {
		return
	}

	levels := make([]int, 0, len(p.Contributions))
	for _, c := range p.Contributions {
		levels = append(levels, c.Amount)
	}
	sort.Ints(levels)

	distinct := levels[:0]
	for _, level := range levels {
		if len(distinct) == 0 || distinct[len(distinct)-1] != level {
			distinct = append(distinct, level)
		}
	}

	prev := distinct[0]
	for _, level := range distinct[1:] {
		eligible := make([]uuid.UUID, 0, len(p.Contributions))
		for _, c := range p.Contributions {
			if c.Amount >= level {
				eligible = append(eligible, c.PlayerID)
			}
		}

		amount := (level - prev) * len(eligible)
		p.SidePots = append(p.SidePots, &SidePot{
			Amount:            amount,
			EligiblePlayerIDs: eligible,
		})
		p.MainPot -= amount

		prev = level
	}
}

// Total returns every chip removed from the players during the hand
func (p *Pot) Total() int {
	total := p.MainPot + p.CurrentRoundPot
	for _, sp := range p.SidePots {
		total += sp.Amount
	}

	return total
}
