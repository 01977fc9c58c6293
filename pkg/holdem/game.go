package holdem

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// GameStatus is the lifecycle of a table
type GameStatus string

// game status constants
const (
	GameNotStarted GameStatus = "notStarted"
	GameInProgress GameStatus = "inProgress"
	GameCompleted  GameStatus = "completed"
)

// GameAction is the externally-visible phase flag the driving layer polls to
// decide what to do next. It is an output of the rules engine, not an input
// to its decisions.
type GameAction string

// game action constants
const (
	GameActionWaiting       GameAction = "waiting"
	GameActionDealingCards  GameAction = "dealingCards"
	GameActionPlayerAction  GameAction = "playerAction"
	GameActionDealNextRound GameAction = "dealNextRound"
	GameActionShowOff       GameAction = "showOff"
)

// Options configures the cash-game stakes
type Options struct {
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
	BuyIn      int `json:"buyIn"`
}

// DefaultOptions returns the default stakes
func DefaultOptions() Options {
	return Options{
		SmallBlind: 5,
		BigBlind:   10,
		BuyIn:      1000,
	}
}

// Game is the persistent table: the seat ordering, the blind rotation across
// hands, and the hand currently being played
type Game struct {
	ID            uuid.UUID   `json:"id"`
	Players       []*Player   `json:"players"`
	CurrentHand   *Hand       `json:"currentHand,omitempty"`
	Status        GameStatus  `json:"status"`
	CurrentAction GameAction  `json:"currentGameAction"`
	Options       Options     `json:"options"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// NewGame seats the players and returns a table that has not yet dealt a hand.
// Seat numbers must be unique; the rotation algorithms assume a dense circle.
func NewGame(players []*Player, opts Options) (*Game, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("there must be at least two players")
	}

	seats := make(map[int]bool, len(players))
	for _, p := range players {
		if seats[p.Seat] {
			return nil, fmt.Errorf("duplicate seat: %d", p.Seat)
		}

		seats[p.Seat] = true
	}

	sorted := make([]*Player, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Seat < sorted[j].Seat
	})

	return &Game{
		ID:            uuid.New(),
		Players:       sorted,
		Status:        GameNotStarted,
		CurrentAction: GameActionWaiting,
		Options:       opts,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Player returns the player with the given ID
func (g *Game) Player(id uuid.UUID) (*Player, error) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, ErrPlayerNotFound
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() (*Player, error) {
	if g.CurrentHand == nil {
		return nil, ErrNoHand
	}

	return g.Player(g.CurrentHand.CurrentPlayerID)
}

// NextPlayer returns the next player after lastPlayerID in seat-circular
// order who is waiting for a turn. With includeAllIn, all-in players are also
// eligible; that is used for rotating positions past all-in players, never
// for the acting turn.
func (g *Game) NextPlayer(lastPlayerID uuid.UUID, includeAllIn bool) (*Player, error) {
	return nextEligible(g.Players, lastPlayerID, includeAllIn)
}

// nextEligible walks the seat circle starting after the given player and
// returns the first player who can receive the turn. Pure with respect to the
// players snapshot.
func nextEligible(players []*Player, afterID uuid.UUID, includeAllIn bool) (*Player, error) {
	start := playerIndex(players, afterID)
	if start < 0 {
		return nil, ErrPlayerNotFound
	}

	for i := 1; i <= len(players); i++ {
		p := players[(start+i)%len(players)]
		if p.Status == StatusWaiting || (includeAllIn && p.Status == StatusAllIn) {
			return p, nil
		}
	}

	return nil, ErrNoWaitingPlayer
}

// isNextPlayerPivot reports whether the betting round has closed: walking
// forward from the current player, the pivot is reached before any waiting
// player. Pure with respect to the players snapshot.
func isNextPlayerPivot(players []*Player, currentID, pivotID uuid.UUID) (bool, error) {
	start := playerIndex(players, currentID)
	if start < 0 {
		return false, ErrPlayerNotFound
	}

	for i := 1; i <= len(players); i++ {
		p := players[(start+i)%len(players)]
		if p.ID == pivotID {
			return true, nil
		}

		if p.Status == StatusWaiting {
			return false, nil
		}
	}

	return false, ErrNoPivot
}

func playerIndex(players []*Player, id uuid.UUID) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}

	return -1
}

// StartNewHand rotates the blinds, posts them, and deals a fresh hand.
// Every player who has not busted is reset to waiting; the small blind moves
// one seat past the previous small blind (or to the first live player on the
// very first hand); the player after the big blind acts first and is the
// initial pivot.
func (g *Game) StartNewHand() (*Hand, error) {
	for _, p := range g.Players {
		if p.Status != StatusLost {
			p.Status = StatusWaiting
			p.MustReveal = false
		}
	}

	var lastSmall *Player
	for _, p := range g.Players {
		if p.BlindStatus == BlindSmall {
			lastSmall = p
			break
		}
	}

	var nextSmall *Player
	if lastSmall == nil {
		for _, p := range g.Players {
			if p.Status != StatusLost {
				nextSmall = p
				break
			}
		}

		if nextSmall == nil {
			return nil, ErrNoWaitingPlayer
		}
	} else {
		lastSmall.BlindStatus = BlindNone

		var err error
		nextSmall, err = nextEligible(g.Players, lastSmall.ID, false)
		if err != nil {
			return nil, err
		}
	}

	nextBig, err := nextEligible(g.Players, nextSmall.ID, false)
	if err != nil {
		return nil, err
	}

	for _, p := range g.Players {
		p.BlindStatus = BlindNone
	}
	nextSmall.BlindStatus = BlindSmall
	nextBig.BlindStatus = BlindBig

	current, err := nextEligible(g.Players, nextBig.ID, false)
	if err != nil {
		return nil, err
	}

	hand := NewHand(current)
	if err := hand.DealHoleCards(g.Players); err != nil {
		return nil, err
	}

	if err := g.postBlind(hand, nextSmall, g.Options.SmallBlind); err != nil {
		return nil, err
	}
	if err := g.postBlind(hand, nextBig, g.Options.BigBlind); err != nil {
		return nil, err
	}

	// heads-up the first actor is the small blind, and posting can exhaust
	// their stack; the acting turn must skip all-in players
	if current.Status == StatusAllIn {
		if next, err := nextEligible(g.Players, current.ID, false); err == nil {
			current = next
			hand.FirstPlayerID = current.ID
			hand.PivotPlayerID = current.ID
			hand.CurrentPlayerID = current.ID
		}
	}

	if current.Status == StatusWaiting {
		current.Status = StatusPlayersTurn
	}

	// with fewer than two players able to act there is no betting at all;
	// the streets run straight out to the showdown
	if len(g.PlayersWhoCanAct()) < 2 {
		hand.SkipActions = true
	}

	g.CurrentHand = hand
	g.Status = GameInProgress
	g.CurrentAction = GameActionDealingCards

	return hand, nil
}

// postBlind removes the blind from the player's stack and records it in the
// pot, clamping to the stack and marking the player all-in when it is exhausted
func (g *Game) postBlind(hand *Hand, p *Player, amount int) error {
	if amount <= 0 {
		return nil
	}

	if amount >= p.Chips {
		amount = p.Chips
		p.Status = StatusAllIn
	}

	p.Chips -= amount
	return hand.AddBet(p.ID, amount)
}

// SwitchToTheNextPlayer advances the turn to the next waiting player.
// The last player keeps a folded or all-in status; otherwise they go back to
// waiting.
func (g *Game) SwitchToTheNextPlayer(lastPlayer *Player) error {
	if g.CurrentHand == nil {
		return ErrNoHand
	}

	next, err := nextEligible(g.Players, lastPlayer.ID, false)
	if err != nil {
		return err
	}

	if lastPlayer.Status != StatusFolded && lastPlayer.Status != StatusAllIn {
		lastPlayer.Status = StatusWaiting
	}

	next.Status = StatusPlayersTurn
	g.CurrentHand.CurrentPlayerID = next.ID

	return nil
}

// IsNextPlayerPivot reports whether the current betting round has closed
func (g *Game) IsNextPlayerPivot() (bool, error) {
	if g.CurrentHand == nil {
		return false, ErrNoHand
	}

	return isNextPlayerPivot(g.Players, g.CurrentHand.CurrentPlayerID, g.CurrentHand.PivotPlayerID)
}

// SetCurrentPlayerToPivot makes the current player the new pivot.
// Called on every raise: everyone else must act again to match it.
func (g *Game) SetCurrentPlayerToPivot() error {
	if g.CurrentHand == nil {
		return ErrNoHand
	}

	g.CurrentHand.PivotPlayerID = g.CurrentHand.CurrentPlayerID
	return nil
}

// SetRoundsFirstPlayerToCurrent starts a new street: the turn goes to the
// first player at or after the hand's fixed first player who is still
// waiting, and that player becomes the street's pivot
func (g *Game) SetRoundsFirstPlayerToCurrent() error {
	if g.CurrentHand == nil {
		return ErrNoHand
	}

	for _, p := range g.Players {
		if p.Status == StatusPlayersTurn {
			p.Status = StatusWaiting
		}
	}

	first, err := g.Player(g.CurrentHand.FirstPlayerID)
	if err != nil {
		return err
	}

	if first.Status != StatusWaiting {
		first, err = nextEligible(g.Players, first.ID, false)
		if err != nil {
			return err
		}
	}

	first.Status = StatusPlayersTurn
	g.CurrentHand.CurrentPlayerID = first.ID
	g.CurrentHand.PivotPlayerID = first.ID

	return nil
}

// PlayersInHand returns the players who have not folded or busted
func (g *Game) PlayersInHand() []*Player {
	players := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.InHand() {
			players = append(players, p)
		}
	}

	return players
}

// PlayersWhoCanAct returns the players who can still make betting decisions
func (g *Game) PlayersWhoCanAct() []*Player {
	players := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.CanAct() {
			players = append(players, p)
		}
	}

	return players
}
