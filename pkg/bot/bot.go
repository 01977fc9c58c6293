// Package bot decides actions for computer-controlled players
package bot

import (
	"holdem-engine/internal/rng"
	"holdem-engine/pkg/holdem"
)

// Policy decides the next action for a bot whose turn it is
type Policy interface {
	Act(game *holdem.Game, player *holdem.Player, callAmount int) *holdem.PlayerAction
}

// RandomPolicy calls every bet it faces and otherwise mixes checks with the
// occasional small raise or shove
type RandomPolicy struct {
	random rng.Generator
}

// NewRandomPolicy returns a RandomPolicy backed by a crypto random source
func NewRandomPolicy() *RandomPolicy {
	return &RandomPolicy{
		random: rng.Crypto{},
	}
}

// Act picks the bot's action. A bot never folds: facing a bet it calls, and
// otherwise it checks 70% of the time, raises a twentieth of its stack 25%
// of the time, and shoves the remaining 5%.
func (p *RandomPolicy) Act(_ *holdem.Game, player *holdem.Player, callAmount int) *holdem.PlayerAction {
	if callAmount > 0 {
		return holdem.NewPlayerAction(holdem.ActionCall, nil)
	}

	switch roll := p.random.Intn(100); {
	case roll < 70:
		return holdem.NewPlayerAction(holdem.ActionCall, nil)
	case roll < 95:
		amount := player.Chips / 20
		if amount < 1 {
			amount = 1
		}

		return holdem.NewPlayerAction(holdem.ActionRaise, holdem.Amount(amount))
	default:
		return holdem.NewPlayerAction(holdem.ActionRaise, holdem.Amount(player.Chips))
	}
}
