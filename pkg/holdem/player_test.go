package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("Alice", 1000, false, 3)
	a.NotEqual("", p.ID.String())
	a.Equal("Alice", p.Name)
	a.Equal(1000, p.Chips)
	a.False(p.IsBot)
	a.Equal(3, p.Seat)
	a.Equal(StatusWaiting, p.Status)
	a.Equal(BlindNone, p.BlindStatus)
	a.Empty(p.HoleCards)
	a.Empty(p.Actions)
	a.False(p.MustReveal)
}

func TestPlayer_HandleAction(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("Bob", 100, false, 0)

	a.NoError(p.HandleAction(NewPlayerAction(ActionCall, Amount(25))))
	a.Equal(75, p.Chips)

	a.NoError(p.HandleAction(NewPlayerAction(ActionRaise, Amount(75))))
	a.Equal(0, p.Chips)

	a.Equal(ErrOverdraft, p.HandleAction(NewPlayerAction(ActionCall, Amount(1))))
	a.Equal(ErrInvalidRaise, p.HandleAction(NewPlayerAction(ActionRaise, nil)))
	a.Equal(ErrInvalidRaise, p.HandleAction(NewPlayerAction(ActionRaise, Amount(0))))

	a.NoError(p.HandleAction(NewPlayerAction(ActionCheck, nil)))
	a.Equal(0, p.Chips)

	a.NoError(p.HandleAction(NewPlayerAction(ActionFold, nil)))
	a.Equal(StatusFolded, p.Status)
}

func TestPlayer_CanAct(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("x", 100, false, 0)

	for status, canAct := range map[Status]bool{
		StatusWaiting:     true,
		StatusPlayersTurn: true,
		StatusFolded:      false,
		StatusAllIn:       false,
		StatusLost:        false,
	} {
		p.Status = status
		a.Equal(canAct, p.CanAct(), string(status))
	}
}

func TestPlayer_InHand(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("x", 100, false, 0)

	for status, inHand := range map[Status]bool{
		StatusWaiting:     true,
		StatusPlayersTurn: true,
		StatusAllIn:       true,
		StatusFolded:      false,
		StatusLost:        false,
	} {
		p.Status = status
		a.Equal(inHand, p.InHand(), string(status))
	}
}
