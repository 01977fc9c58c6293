package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func threePlayerGame(t *testing.T) *Game {
	t.Helper()

	game, err := NewGame([]*Player{
		NewPlayer("a", 1000, false, 0),
		NewPlayer("b", 1000, false, 1),
		NewPlayer("c", 1000, false, 2),
	}, DefaultOptions())
	assert.NoError(t, err)

	return game
}

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	game := threePlayerGame(t)
	a.Equal(GameNotStarted, game.Status)
	a.Equal(GameActionWaiting, game.CurrentAction)
	a.Nil(game.CurrentHand)

	_, err := NewGame([]*Player{NewPlayer("solo", 1000, false, 0)}, DefaultOptions())
	a.EqualError(err, "there must be at least two players")

	_, err = NewGame([]*Player{
		NewPlayer("a", 1000, false, 1),
		NewPlayer("b", 1000, false, 1),
	}, DefaultOptions())
	a.EqualError(err, "duplicate seat: 1")
}

func TestNewGame_sortsBySeat(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame([]*Player{
		NewPlayer("c", 1000, false, 2),
		NewPlayer("a", 1000, false, 0),
		NewPlayer("b", 1000, false, 1),
	}, DefaultOptions())
	a.NoError(err)

	a.Equal("a", game.Players[0].Name)
	a.Equal("b", game.Players[1].Name)
	a.Equal("c", game.Players[2].Name)
}

func TestGame_StartNewHand(t *testing.T) {
	a := assert.New(t)

	game := threePlayerGame(t)
	hand, err := game.StartNewHand()
	a.NoError(err)

	a.Equal(GameInProgress, game.Status)
	a.Equal(GameActionDealingCards, game.CurrentAction)
	a.Equal(StatusPreflop, hand.Status)

	small, big, first := game.Players[0], game.Players[1], game.Players[2]
	a.Equal(BlindSmall, small.BlindStatus)
	a.Equal(BlindBig, big.BlindStatus)
	a.Equal(BlindNone, first.BlindStatus)

	a.Equal(995, small.Chips)
	a.Equal(990, big.Chips)
	a.Equal(15, hand.Pot.Total())

	a.Equal(first.ID, hand.FirstPlayerID)
	a.Equal(first.ID, hand.PivotPlayerID)
	a.Equal(first.ID, hand.CurrentPlayerID)
	a.Equal(StatusPlayersTurn, first.Status)

	for _, p := range game.Players {
		a.Len(p.HoleCards, 2)
	}
}

func TestGame_StartNewHand_rotatesBlinds(t *testing.T) {
	a := assert.New(t)

	game := threePlayerGame(t)
	_, err := game.StartNewHand()
	a.NoError(err)
	a.Equal(BlindSmall, game.Players[0].BlindStatus)

	_, err = game.StartNewHand()
	a.NoError(err)
	a.Equal(BlindNone, game.Players[0].BlindStatus)
	a.Equal(BlindSmall, game.Players[1].BlindStatus)
	a.Equal(BlindBig, game.Players[2].BlindStatus)
	// first to act wraps back around
	a.Equal(game.Players[0].ID, game.CurrentHand.FirstPlayerID)

	_, err = game.StartNewHand()
	a.NoError(err)
	a.Equal(BlindSmall, game.Players[2].BlindStatus)
	a.Equal(BlindBig, game.Players[0].BlindStatus)
}

func TestGame_StartNewHand_skipsBustedPlayers(t *testing.T) {
	a := assert.New(t)

	game := threePlayerGame(t)
	_, err := game.StartNewHand()
	a.NoError(err)

	// the previous big blind busted; the small blind skips over them
	game.Players[1].Status = StatusLost

	_, err = game.StartNewHand()
	a.NoError(err)
	a.Equal(StatusLost, game.Players[1].Status)
	a.Empty(game.Players[1].HoleCards)
	a.Equal(BlindSmall, game.Players[2].BlindStatus)
	a.Equal(BlindBig, game.Players[0].BlindStatus)
}

func TestGame_StartNewHand_shortStackBlindIsAllIn(t *testing.T) {
	a := assert.New(t)

	game := threePlayerGame(t)
	game.Players[1].Chips = 4 // cannot cover the big blind

	hand, err := game.StartNewHand()
	a.NoError(err)

	a.Equal(StatusAllIn, game.Players[1].Status)
	a.Equal(0, game.Players[1].Chips)
	a.Equal(9, hand.Pot.Total()) // 5 small + 4 short big
}

func TestGame_StartNewHand_headsUpShortSmallBlind(t *testing.T) {
	a := assert.New(t)

	// heads-up the small blind acts first, but posting wiped them out
	game, err := NewGame([]*Player{
		NewPlayer("short", 3, false, 0),
		NewPlayer("big", 1000, false, 1),
	}, DefaultOptions())
	a.NoError(err)

	hand, err := game.StartNewHand()
	a.NoError(err)

	short, big := game.Players[0], game.Players[1]
	a.Equal(BlindSmall, short.BlindStatus)
	a.Equal(StatusAllIn, short.Status)
	a.Equal(0, short.Chips)

	// the turn skips the all-in player entirely
	a.Equal(big.ID, hand.CurrentPlayerID)
	a.Equal(big.ID, hand.FirstPlayerID)
	a.Equal(big.ID, hand.PivotPlayerID)
	a.Equal(StatusPlayersTurn, big.Status)

	// nobody is left to bet against, so the streets run out
	a.True(hand.SkipActions)
	a.Equal(13, hand.Pot.Total())
}

func TestGame_StartNewHand_bothBlindsAllIn(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame([]*Player{
		NewPlayer("short", 3, false, 0),
		NewPlayer("shorter", 4, false, 1),
	}, DefaultOptions())
	a.NoError(err)

	hand, err := game.StartNewHand()
	a.NoError(err)

	a.Equal(StatusAllIn, game.Players[0].Status)
	a.Equal(StatusAllIn, game.Players[1].Status)
	a.True(hand.SkipActions)
	a.Equal(7, hand.Pot.Total())
}

func TestGame_NextPlayer(t *testing.T) {
	a := assert.New(t)

	game := threePlayerGame(t)
	_, err := game.StartNewHand()
	a.NoError(err)

	next, err := game.NextPlayer(game.Players[0].ID, false)
	a.NoError(err)
	a.Equal(game.Players[1].ID, next.ID)

	// wraps around the table
	game.Players[2].Status = StatusWaiting
	next, err = game.NextPlayer(game.Players[1].ID, false)
	a.NoError(err)
	a.Equal(game.Players[2].ID, next.ID)

	// folded and all-in players are skipped
	game.Players[1].Status = StatusFolded
	game.Players[2].Status = StatusAllIn
	next, err = game.NextPlayer(game.Players[0].ID, false)
	a.NoError(err)
	a.Equal(game.Players[0].ID, next.ID)

	// unless all-in players are explicitly included
	next, err = game.NextPlayer(game.Players[0].ID, true)
	a.NoError(err)
	a.Equal(game.Players[2].ID, next.ID)

	game.Players[0].Status = StatusFolded
	game.Players[2].Status = StatusFolded
	_, err = game.NextPlayer(game.Players[0].ID, false)
	a.Equal(ErrNoWaitingPlayer, err)
}

func TestGame_IsNextPlayerPivot(t *testing.T) {
	a := assert.New(t)

	game := threePlayerGame(t)
	_, err := game.StartNewHand()
	a.NoError(err)

	// pivot is player 2; players 0 and 1 still wait to act
	closed, err := game.IsNextPlayerPivot()
	a.NoError(err)
	a.False(closed)

	// everyone between the current player and the pivot is done
	game.Players[0].Status = StatusFolded
	game.Players[1].Status = StatusAllIn
	closed, err = game.IsNextPlayerPivot()
	a.NoError(err)
	a.True(closed)
}

func TestGame_SwitchToTheNextPlayer(t *testing.T) {
	a := assert.New(t)

	game := threePlayerGame(t)
	_, err := game.StartNewHand()
	a.NoError(err)

	current, err := game.CurrentPlayer()
	a.NoError(err)
	a.Equal(game.Players[2].ID, current.ID)

	a.NoError(game.SwitchToTheNextPlayer(current))
	a.Equal(StatusWaiting, current.Status)
	a.Equal(game.Players[0].ID, game.CurrentHand.CurrentPlayerID)
	a.Equal(StatusPlayersTurn, game.Players[0].Status)

	// a folded player keeps their folded status when the turn moves on
	game.Players[0].Status = StatusFolded
	a.NoError(game.SwitchToTheNextPlayer(game.Players[0]))
	a.Equal(StatusFolded, game.Players[0].Status)
	a.Equal(game.Players[1].ID, game.CurrentHand.CurrentPlayerID)
}

func TestGame_SetCurrentPlayerToPivot(t *testing.T) {
	a := assert.New(t)

	game := threePlayerGame(t)
	_, err := game.StartNewHand()
	a.NoError(err)

	a.NoError(game.SwitchToTheNextPlayer(game.Players[2]))
	a.NoError(game.SetCurrentPlayerToPivot())
	a.Equal(game.Players[0].ID, game.CurrentHand.PivotPlayerID)
}

func TestGame_SetRoundsFirstPlayerToCurrent(t *testing.T) {
	a := assert.New(t)

	game := threePlayerGame(t)
	_, err := game.StartNewHand()
	a.NoError(err)

	// a new street starts at the hand's fixed first player
	a.NoError(game.SetRoundsFirstPlayerToCurrent())
	a.Equal(game.Players[2].ID, game.CurrentHand.CurrentPlayerID)
	a.Equal(game.Players[2].ID, game.CurrentHand.PivotPlayerID)

	// if the first player folded, the street starts at the next waiting player
	game.Players[2].Status = StatusFolded
	a.NoError(game.SetRoundsFirstPlayerToCurrent())
	a.Equal(game.Players[0].ID, game.CurrentHand.CurrentPlayerID)
	a.Equal(game.Players[0].ID, game.CurrentHand.PivotPlayerID)
	a.Equal(StatusPlayersTurn, game.Players[0].Status)
}

func TestGame_PlayersInHand(t *testing.T) {
	a := assert.New(t)

	game := threePlayerGame(t)
	_, err := game.StartNewHand()
	a.NoError(err)

	a.Len(game.PlayersInHand(), 3)
	a.Len(game.PlayersWhoCanAct(), 3)

	game.Players[0].Status = StatusFolded
	game.Players[1].Status = StatusAllIn

	a.Len(game.PlayersInHand(), 2)
	a.Len(game.PlayersWhoCanAct(), 1)
}
