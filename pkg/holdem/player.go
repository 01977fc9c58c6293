package holdem

import (
	"time"

	"github.com/google/uuid"

	"holdem-engine/pkg/deck"
)

// Status represents where a player is in the hand lifecycle
type Status string

// status constants
const (
	StatusWaiting     Status = "waiting"
	StatusPlayersTurn Status = "playersTurn"
	StatusFolded      Status = "folded"
	StatusAllIn       Status = "allIn"
	StatusLost        Status = "lost"
)

// BlindStatus represents the blind role a player holds for the current hand
type BlindStatus string

// blind constants
const (
	BlindNone  BlindStatus = "none"
	BlindSmall BlindStatus = "small"
	BlindBig   BlindStatus = "big"
)

// ActionType is the kind of action a player can take
type ActionType string

// action constants
const (
	ActionFold  ActionType = "fold"
	ActionCall  ActionType = "call"
	ActionRaise ActionType = "raise"
	ActionCheck ActionType = "check"
)

// PlayerAction is a single decision by a player.
// Amount is nil for fold and check.
type PlayerAction struct {
	Type      ActionType `json:"type"`
	Amount    *int       `json:"amount,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// NewPlayerAction returns a PlayerAction stamped with the current time
func NewPlayerAction(actionType ActionType, amount *int) *PlayerAction {
	return &PlayerAction{
		Type:      actionType,
		Amount:    amount,
		Timestamp: time.Now(),
	}
}

// Amount helper for building raise actions
func Amount(n int) *int {
	return &n
}

// Player is a seat at the table. Created once per game; chips and statuses
// mutate hand to hand.
type Player struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Chips       int             `json:"chips"`
	IsBot       bool            `json:"isBot"`
	Seat        int             `json:"seat"`
	HoleCards   deck.Hand       `json:"holeCards"`
	BlindStatus BlindStatus     `json:"blindStatus"`
	Status      Status          `json:"status"`
	Actions     []*PlayerAction `json:"actionHistory"`
	MustReveal  bool            `json:"hasToRevealCards"`
}

// NewPlayer returns a seated player ready for the first hand
func NewPlayer(name string, chips int, isBot bool, seat int) *Player {
	return &Player{
		ID:          uuid.New(),
		Name:        name,
		Chips:       chips,
		IsBot:       isBot,
		Seat:        seat,
		HoleCards:   make(deck.Hand, 0, 2),
		BlindStatus: BlindNone,
		Status:      StatusWaiting,
		Actions:     make([]*PlayerAction, 0),
	}
}

// HandleAction applies the chip and status effect of an action.
// Call and raise amounts must be positive and already clamped to the player's
// stack; an overdraft is a caller bug, not a player decision.
func (p *Player) HandleAction(action *PlayerAction) error {
	switch action.Type {
	case ActionFold:
		p.Status = StatusFolded
		return nil
	case ActionCall, ActionRaise:
		if action.Amount == nil || *action.Amount <= 0 {
			return ErrInvalidRaise
		}

		if *action.Amount > p.Chips {
			return ErrOverdraft
		}

		p.Chips -= *action.Amount
		return nil
	case ActionCheck:
		return nil
	}

	return nil
}

// AddChips credits winnings to the player's stack
func (p *Player) AddChips(amount int) {
	p.Chips += amount
}

// ResetHoleCards clears the player's hole cards for a new hand
func (p *Player) ResetHoleCards() {
	p.HoleCards = make(deck.Hand, 0, 2)
}

// CanAct returns true if the player can still make betting decisions
func (p *Player) CanAct() bool {
	return p.Status == StatusWaiting || p.Status == StatusPlayersTurn
}

// InHand returns true if the player has not folded or busted out of the game
func (p *Player) InHand() bool {
	return p.Status != StatusFolded && p.Status != StatusLost
}
