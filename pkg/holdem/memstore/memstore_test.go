package memstore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"holdem-engine/pkg/holdem"
)

func TestStore_games(t *testing.T) {
	a := assert.New(t)

	store := New()

	_, err := store.Game(uuid.New())
	a.Error(err)

	game, err := holdem.NewGame([]*holdem.Player{
		holdem.NewPlayer("a", 1000, false, 0),
		holdem.NewPlayer("b", 1000, false, 1),
	}, holdem.DefaultOptions())
	a.NoError(err)

	a.NoError(store.SaveGame(game))

	loaded, err := store.Game(game.ID)
	a.NoError(err)
	a.Equal(game, loaded)
}

func TestStore_winners(t *testing.T) {
	a := assert.New(t)

	store := New()
	handID := uuid.New()

	winners, err := store.Winners(handID)
	a.NoError(err)
	a.Empty(winners)

	w1 := &holdem.Winner{HandID: handID, PlayerID: uuid.New(), PotShare: 100}
	w2 := &holdem.Winner{HandID: handID, PlayerID: uuid.New(), PotShare: 50}
	a.NoError(store.SaveWinners([]*holdem.Winner{w1}))
	a.NoError(store.SaveWinners([]*holdem.Winner{w2}))

	winners, err = store.Winners(handID)
	a.NoError(err)
	a.Equal([]*holdem.Winner{w1, w2}, winners)

	other, err := store.Winners(uuid.New())
	a.NoError(err)
	a.Empty(other)
}
